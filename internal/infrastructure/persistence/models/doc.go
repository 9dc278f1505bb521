// Package models contains the GORM persistence models for the storefront
// read side. Each model maps one table and converts to its domain type with
// ToDomain; nullable numeric and text columns become zero values there.
package models
