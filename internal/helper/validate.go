// Package helper validates scan requests after JSON binding and fills in
// the documented defaults. A value outside a tool's contract never reaches
// a command builder.
package helper

import (
	"errors"
	"fmt"
	"regexp"
	"slices"
	"strings"

	"toolbridge/internal/model"
)

var (
	portsPattern      = regexp.MustCompile(`^[0-9,\-]+$`)
	recordTypePattern = regexp.MustCompile(`^[A-Za-z0-9]+$`)
)

var nmapScanTypes = []string{"basic", "service", "vuln", "full"}

func ValidateNmapRequest(req *model.NmapRequest) error {
	if strings.TrimSpace(req.Target) == "" {
		return errors.New("target must not be empty")
	}
	if req.ScanType == "" {
		req.ScanType = "basic"
	}
	if !slices.Contains(nmapScanTypes, req.ScanType) {
		return fmt.Errorf("unsupported scan_type: %s", req.ScanType)
	}
	if req.Ports != "" && !portsPattern.MatchString(req.Ports) {
		return fmt.Errorf("invalid port spec: %s", req.Ports)
	}
	return nil
}

func ValidateSqlmapRequest(req *model.SqlmapRequest) error {
	if strings.TrimSpace(req.URL) == "" {
		return errors.New("url must not be empty")
	}
	if req.Level == 0 {
		req.Level = 1
	}
	if req.Risk == 0 {
		req.Risk = 1
	}
	if req.Level < 1 || req.Level > 5 {
		return fmt.Errorf("level must be 1-5, got %d", req.Level)
	}
	if req.Risk < 1 || req.Risk > 3 {
		return fmt.Errorf("risk must be 1-3, got %d", req.Risk)
	}
	return nil
}

func ValidateNiktoRequest(req *model.NiktoRequest) error {
	if strings.TrimSpace(req.Target) == "" {
		return errors.New("target must not be empty")
	}
	if req.Port == 0 {
		req.Port = 80
	}
	if req.Port < 1 || req.Port > 65535 {
		return fmt.Errorf("port must be 1-65535, got %d", req.Port)
	}
	return nil
}

func ValidateWhatwebRequest(req *model.WhatwebRequest) error {
	if strings.TrimSpace(req.Target) == "" {
		return errors.New("target must not be empty")
	}
	if req.Aggression == 0 {
		req.Aggression = 1
	}
	if req.Aggression < 1 || req.Aggression > 4 {
		return fmt.Errorf("aggression must be 1-4, got %d", req.Aggression)
	}
	return nil
}

func ValidateNslookupRequest(req *model.NslookupRequest) error {
	if strings.TrimSpace(req.Domain) == "" {
		return errors.New("domain must not be empty")
	}
	if req.RecordType != "" && !recordTypePattern.MatchString(req.RecordType) {
		return fmt.Errorf("invalid record_type: %s", req.RecordType)
	}
	return nil
}

func ValidateDigRequest(req *model.DigRequest) error {
	if strings.TrimSpace(req.Domain) == "" {
		return errors.New("domain must not be empty")
	}
	if req.RecordType == "" {
		req.RecordType = "A"
	}
	if !recordTypePattern.MatchString(req.RecordType) {
		return fmt.Errorf("invalid record_type: %s", req.RecordType)
	}
	return nil
}

func ValidateXSSRequest(req *model.XSSRequest) error {
	if strings.TrimSpace(req.URL) == "" {
		return errors.New("url must not be empty")
	}
	if req.Threads == 0 {
		req.Threads = 10
	}
	if req.Threads < 1 || req.Threads > 100 {
		return fmt.Errorf("threads must be 1-100, got %d", req.Threads)
	}
	return nil
}

var wpscanCategories = []string{"vp", "ap", "p", "vt", "at", "t", "u", "m"}

func ValidateWPScanRequest(req *model.WPScanRequest) error {
	if strings.TrimSpace(req.URL) == "" {
		return errors.New("url must not be empty")
	}
	if len(req.Enumerate) == 0 {
		req.Enumerate = []string{"vp", "u"}
		return nil
	}
	for i, category := range req.Enumerate {
		category = strings.ToLower(strings.TrimSpace(category))
		if !slices.Contains(wpscanCategories, category) {
			return fmt.Errorf("unsupported enumerate category: %s", req.Enumerate[i])
		}
		req.Enumerate[i] = category
	}
	return nil
}
