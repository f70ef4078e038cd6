package helper

import (
	"testing"

	"github.com/stretchr/testify/require"

	"toolbridge/internal/model"
)

func TestValidateNmapRequestDefaultsScanType(t *testing.T) {
	req := &model.NmapRequest{Target: "10.0.0.1"}
	require.NoError(t, ValidateNmapRequest(req))
	require.Equal(t, "basic", req.ScanType)
}

func TestValidateNmapRequestEmptyTarget(t *testing.T) {
	require.Error(t, ValidateNmapRequest(&model.NmapRequest{Target: "  "}))
}

func TestValidateNmapRequestBadScanType(t *testing.T) {
	require.Error(t, ValidateNmapRequest(&model.NmapRequest{Target: "10.0.0.1", ScanType: "stealth"}))
}

func TestValidateNmapRequestBadPorts(t *testing.T) {
	require.Error(t, ValidateNmapRequest(&model.NmapRequest{Target: "10.0.0.1", Ports: "80; rm -rf /"}))
}

func TestValidateNmapRequestPortRange(t *testing.T) {
	req := &model.NmapRequest{Target: "10.0.0.1", Ports: "80,443,8000-9000"}
	require.NoError(t, ValidateNmapRequest(req))
}

func TestValidateSqlmapRequestDefaults(t *testing.T) {
	req := &model.SqlmapRequest{URL: "http://x.test"}
	require.NoError(t, ValidateSqlmapRequest(req))
	require.Equal(t, 1, req.Level)
	require.Equal(t, 1, req.Risk)
}

func TestValidateSqlmapRequestRiskOutOfRange(t *testing.T) {
	require.Error(t, ValidateSqlmapRequest(&model.SqlmapRequest{URL: "http://x.test", Risk: 4}))
}

func TestValidateSqlmapRequestLevelOutOfRange(t *testing.T) {
	require.Error(t, ValidateSqlmapRequest(&model.SqlmapRequest{URL: "http://x.test", Level: 6}))
}

func TestValidateNiktoRequestDefaultsPort(t *testing.T) {
	req := &model.NiktoRequest{Target: "example.com"}
	require.NoError(t, ValidateNiktoRequest(req))
	require.Equal(t, 80, req.Port)
}

func TestValidateNiktoRequestPortOutOfRange(t *testing.T) {
	require.Error(t, ValidateNiktoRequest(&model.NiktoRequest{Target: "example.com", Port: 70000}))
}

func TestValidateWhatwebRequestAggressionRange(t *testing.T) {
	require.Error(t, ValidateWhatwebRequest(&model.WhatwebRequest{Target: "http://x.test", Aggression: 5}))

	req := &model.WhatwebRequest{Target: "http://x.test"}
	require.NoError(t, ValidateWhatwebRequest(req))
	require.Equal(t, 1, req.Aggression)
}

func TestValidateNslookupRequestRecordType(t *testing.T) {
	require.NoError(t, ValidateNslookupRequest(&model.NslookupRequest{Domain: "example.com", RecordType: "MX"}))
	require.Error(t, ValidateNslookupRequest(&model.NslookupRequest{Domain: "example.com", RecordType: "MX;ls"}))
}

func TestValidateDigRequestDefaultsType(t *testing.T) {
	req := &model.DigRequest{Domain: "example.com"}
	require.NoError(t, ValidateDigRequest(req))
	require.Equal(t, "A", req.RecordType)
}

func TestValidateXSSRequestDefaultsThreads(t *testing.T) {
	req := &model.XSSRequest{URL: "http://x.test"}
	require.NoError(t, ValidateXSSRequest(req))
	require.Equal(t, 10, req.Threads)
}

func TestValidateXSSRequestThreadsOutOfRange(t *testing.T) {
	require.Error(t, ValidateXSSRequest(&model.XSSRequest{URL: "http://x.test", Threads: 500}))
}

func TestValidateWPScanRequestDefaultsEnumerate(t *testing.T) {
	req := &model.WPScanRequest{URL: "http://blog.test"}
	require.NoError(t, ValidateWPScanRequest(req))
	require.Equal(t, []string{"vp", "u"}, req.Enumerate)
}

func TestValidateWPScanRequestNormalizesCategories(t *testing.T) {
	req := &model.WPScanRequest{URL: "http://blog.test", Enumerate: []string{" VP ", "u"}}
	require.NoError(t, ValidateWPScanRequest(req))
	require.Equal(t, []string{"vp", "u"}, req.Enumerate)
}

func TestValidateWPScanRequestUnknownCategory(t *testing.T) {
	require.Error(t, ValidateWPScanRequest(&model.WPScanRequest{URL: "http://blog.test", Enumerate: []string{"everything"}}))
}
