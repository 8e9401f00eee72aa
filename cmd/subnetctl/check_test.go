package main

import (
	"bytes"
	"strings"
	"testing"
)

func runCheck(t *testing.T, args ...string) (string, error) {
	t.Helper()

	root := newRootCmd()
	out := &bytes.Buffer{}
	root.SetOut(out)
	root.SetErr(out)
	root.SetArgs(append([]string{"check"}, args...))

	err := root.Execute()
	return out.String(), err
}

func TestCheckReportsMatch(t *testing.T) {
	out, err := runCheck(t, "--ip", "192.168.182.1", "192.168.182.0/24")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !strings.Contains(out, "match") || strings.Contains(out, "no match") {
		t.Fatalf("expected match output, got %q", out)
	}
}

func TestCheckReportsNoMatch(t *testing.T) {
	out, err := runCheck(t, "--ip", "192.168.183.1", "192.168.182.0/24")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !strings.Contains(out, "no match") {
		t.Fatalf("expected no match output, got %q", out)
	}
}

func TestCheckAllMode(t *testing.T) {
	out, err := runCheck(t, "--all", "--ip", "192.168.182.1", "192.168.182.0/24", "192.168.182.1/32")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if strings.Contains(out, "no match") {
		t.Fatalf("expected match output, got %q", out)
	}
}

func TestCheckMultipleAddresses(t *testing.T) {
	out, err := runCheck(t, "--ip", "192.168.182.1", "--ip", "192.168.182.2", "192.168.181.0/24", "192.168.182.2/32")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if strings.Contains(out, "no match") {
		t.Fatalf("expected match output, got %q", out)
	}
}

func TestCheckRejectsInvalidCIDR(t *testing.T) {
	_, err := runCheck(t, "--ip", "192.168.182.1", "192.168.1.0/33")
	if err == nil {
		t.Fatal("expected error for invalid cidr")
	}
}

func TestCheckRejectsInvalidAddress(t *testing.T) {
	_, err := runCheck(t, "--ip", "not-an-ip", "192.168.182.0/24")
	if err == nil {
		t.Fatal("expected error for invalid address")
	}
}

func TestCheckAllWithMultipleAddressesFails(t *testing.T) {
	_, err := runCheck(t, "--all", "--ip", "192.168.182.1", "--ip", "192.168.182.2", "192.168.182.0/24")
	if err == nil {
		t.Fatal("expected error for --all with multiple addresses")
	}
}
