package model

import (
	"time"

	"github.com/makeasinger/briefgen/internal/lyrics"
)

// GenerateResponse represents one generated prompt document
type GenerateResponse struct {
	Prompt      string   `json:"prompt"`
	Missing     []string `json:"missing"`
	Warnings    []string `json:"warnings"`
	Status      string   `json:"status"`
	DerivedName string   `json:"derivedName"`
	Style       string   `json:"style"`
}

// BatchGenerateRequest represents a batch of form snapshots
type BatchGenerateRequest struct {
	Items []FormInput `json:"items" validate:"required,min=1,dive"`
}

// BatchGenerateResponse keeps results in request order
type BatchGenerateResponse struct {
	Results []GenerateResponse `json:"results"`
}

// SimilarNameRequest represents the request for a derived artist name
type SimilarNameRequest struct {
	Name  string `json:"name" validate:"required,max=200"`
	Count int    `json:"count" validate:"omitempty,min=1,max=10"`
}

// SimilarNameResponse represents derived artist names
type SimilarNameResponse struct {
	Name     string   `json:"name"`
	Similar  string   `json:"similar"`
	Variants []string `json:"variants,omitempty"`
}

// LyricsValidateRequest represents lyrics to scan
type LyricsValidateRequest struct {
	Lyrics string `json:"lyrics" validate:"max=20000"`
}

// LyricsValidateResponse represents the scan outcome
type LyricsValidateResponse struct {
	IsValid  bool             `json:"isValid"`
	Warnings []lyrics.Warning `json:"warnings"`
}

// StyleOptimizeResponse represents a style descriptor
type StyleOptimizeResponse struct {
	Style       string     `json:"style"`
	Level       StyleLevel `json:"level"`
	DerivedName string     `json:"derivedName,omitempty"`
}

// ExportData is the normalized form snapshot plus the derived name
type ExportData struct {
	FormInput        `yaml:",inline"`
	ReferenceSimilar string `json:"referenceSimilar" yaml:"referenceSimilar"`
}

// ExportPayload represents the JSON export of a generation
type ExportPayload struct {
	ID          string     `json:"id" yaml:"id"`
	CreatedAt   time.Time  `json:"createdAt" yaml:"createdAt"`
	Data        ExportData `json:"data" yaml:"data"`
	PromptFinal string     `json:"promptFinal" yaml:"promptFinal"`
	Missing     []string   `json:"missing" yaml:"missing"`
	Warnings    []string   `json:"warnings" yaml:"warnings"`
}
