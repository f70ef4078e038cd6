package model

// Normalized result types produced by the per-tool parsers. Raw captured
// output always rides along for auditability; list fields are initialized to
// empty slices so the JSON encoding never carries null where the caller
// expects an array.

// Raw holds the verbatim captured process output.
type Raw struct {
	RawOutput string `json:"raw_output"`
	RawStderr string `json:"raw_stderr,omitempty"`
}

type NmapPort struct {
	Port     int    `json:"port"`
	Protocol string `json:"protocol"`
	State    string `json:"state"`
	Service  string `json:"service"`
}

type NmapHost struct {
	Host  string     `json:"host"`
	Ports []NmapPort `json:"ports"`
}

type NmapSummary struct {
	Status string `json:"status,omitempty"`
}

type NmapResult struct {
	Hosts   []NmapHost  `json:"hosts"`
	Summary NmapSummary `json:"summary"`
	Raw
}

type InjectionPoint struct {
	Parameter string `json:"parameter"`
	Type      string `json:"type"`
}

type SqlmapResult struct {
	Vulnerable      bool             `json:"vulnerable"`
	InjectionPoints []InjectionPoint `json:"injection_points"`
	Databases       []string         `json:"databases"`
	Raw
}

type NiktoServerInfo struct {
	Server string `json:"server,omitempty"`
}

type NiktoResult struct {
	Target     string          `json:"target"`
	ServerInfo NiktoServerInfo `json:"server_info"`
	Findings   []string        `json:"findings"`
	Raw
}

type WhatwebResult struct {
	Results    []map[string]any `json:"results"`
	ParseError bool             `json:"parse_error,omitempty"`
	Raw
}

type NslookupResult struct {
	Server    string   `json:"server,omitempty"`
	Addresses []string `json:"addresses"`
	Names     []string `json:"names"`
	Raw
}

type DigQuestion struct {
	Name  string `json:"name"`
	Class string `json:"class"`
	Type  string `json:"type"`
}

type DigAnswer struct {
	Name  string `json:"name"`
	TTL   int    `json:"ttl"`
	Class string `json:"class"`
	Type  string `json:"type"`
	Data  string `json:"data"`
}

type DigResult struct {
	Question    *DigQuestion `json:"question,omitempty"`
	Answers     []DigAnswer  `json:"answers"`
	QueryTimeMs int          `json:"query_time_ms,omitempty"`
	Server      string       `json:"server,omitempty"`
	ShortOutput []string     `json:"short_output,omitempty"`
	Raw
}

type XSSResult struct {
	Vulnerable          bool     `json:"vulnerable"`
	VulnerableEndpoints []string `json:"vulnerable_endpoints"`
	Payloads            []string `json:"payloads"`
	TestedEndpoints     []string `json:"tested_endpoints"`
	Raw
}

type WPPlugin struct {
	Name    string `json:"name"`
	Version string `json:"version,omitempty"`
}

type WPScanSummary struct {
	VulnerabilityCount int `json:"vulnerability_count"`
	PluginCount        int `json:"plugin_count"`
	UserCount          int `json:"user_count"`
}

type WPScanResult struct {
	WordPressDetected bool          `json:"wordpress_detected"`
	Version           string        `json:"version,omitempty"`
	Vulnerabilities   []string      `json:"vulnerabilities"`
	Plugins           []WPPlugin    `json:"plugins"`
	Users             []string      `json:"users"`
	Summary           WPScanSummary `json:"summary"`
	// ParsedJSON is true when the tool's native JSON report decoded cleanly;
	// false means the text-pattern fallback produced the fields above.
	ParsedJSON bool `json:"parsed_json"`
	Raw
}
