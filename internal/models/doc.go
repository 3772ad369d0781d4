// Package models provides functionality for listing and categorizing
// available OpenAI models. It helps users discover which chat models
// are available with their API key for generating pronunciation hints.
package models
