package model

// Request types for the scan endpoints. Required fields are enforced by gin
// binding; range checks and defaulting live in internal/helper.

type NmapRequest struct {
	Target   string `json:"target" binding:"required"`
	Ports    string `json:"ports,omitempty"`
	ScanType string `json:"scan_type,omitempty"`
}

type SqlmapRequest struct {
	URL    string `json:"url" binding:"required"`
	Data   string `json:"data,omitempty"`
	Cookie string `json:"cookie,omitempty"`
	Level  int    `json:"level,omitempty"`
	Risk   int    `json:"risk,omitempty"`
}

type NiktoRequest struct {
	Target string `json:"target" binding:"required"`
	Port   int    `json:"port,omitempty"`
	SSL    bool   `json:"ssl,omitempty"`
}

type WhatwebRequest struct {
	Target     string `json:"target" binding:"required"`
	Aggression int    `json:"aggression,omitempty"`
}

type NslookupRequest struct {
	Domain     string `json:"domain" binding:"required"`
	RecordType string `json:"record_type,omitempty"`
	Nameserver string `json:"nameserver,omitempty"`
}

type DigRequest struct {
	Domain     string `json:"domain" binding:"required"`
	RecordType string `json:"record_type,omitempty"`
	Nameserver string `json:"nameserver,omitempty"`
	Short      bool   `json:"short,omitempty"`
}

type XSSRequest struct {
	URL     string `json:"url" binding:"required"`
	Crawl   bool   `json:"crawl,omitempty"`
	Threads int    `json:"threads,omitempty"`
	// Data is the payload vector handed to the scanner script, not a POST
	// body; sqlmap's Data field is unrelated.
	Data string `json:"data,omitempty"`
}

type WPScanRequest struct {
	URL        string   `json:"url" binding:"required"`
	Aggressive bool     `json:"aggressive,omitempty"`
	Enumerate  []string `json:"enumerate,omitempty"`
	APIToken   string   `json:"api_token,omitempty"`
}
