// Package models holds the result types returned by hide, reveal, and
// inspect operations.
package models

import "time"

// HideResult describes a completed embed operation.
type HideResult struct {
	CarrierPath  string        `json:"carrierPath"`
	OutputPath   string        `json:"outputPath"`
	Format       string        `json:"format"`
	Kind         string        `json:"kind"`
	Encrypted    bool          `json:"encrypted"`
	PayloadBytes int           `json:"payloadBytes"` // envelope frame size, before bit expansion
	FrameBits    int           `json:"frameBits"`    // bits written, end marker included
	CapacityBits int           `json:"capacityBits"` // total samples in the carrier
	Duration     time.Duration `json:"duration"`
}

// RevealResult describes a completed extract operation. Found is false when
// the carrier holds no end marker, a valid negative rather than a failure.
type RevealResult struct {
	CarrierPath  string        `json:"carrierPath"`
	Format       string        `json:"format"`
	Kind         string        `json:"kind"`
	Found        bool          `json:"found"`
	Message      string        `json:"message"`
	Encrypted    bool          `json:"encrypted"`
	PayloadBytes int           `json:"payloadBytes"`
	Duration     time.Duration `json:"duration"`
}

// CarrierInfo describes a carrier's embedding capacity.
type CarrierInfo struct {
	Path          string                 `json:"path"`
	Format        string                 `json:"format"`
	Kind          string                 `json:"kind"`
	Samples       int                    `json:"samples"`
	CapacityBytes int                    `json:"capacityBytes"` // payload bytes, marker accounted for
	Details       map[string]interface{} `json:"details"`
}
