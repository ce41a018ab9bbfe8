package domain

import (
	"testing"
	"time"
)

func TestOTPValid(t *testing.T) {
	issued := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	code := "1234"
	window := 300 * time.Second

	u := &User{OTPCode: &code, OTPCreatedAt: &issued}

	if !u.OTPValid("1234", issued.Add(299*time.Second), window) {
		t.Error("matching code inside window should be valid")
	}
	if !u.OTPValid("1234", issued.Add(300*time.Second), window) {
		t.Error("matching code at exactly 300s should be valid")
	}
	if u.OTPValid("1234", issued.Add(301*time.Second), window) {
		t.Error("code at 301s should be invalid")
	}
	if u.OTPValid("9999", issued, window) {
		t.Error("mismatched code should be invalid")
	}
	if u.OTPValid("", issued, window) {
		t.Error("empty presented code should be invalid")
	}
}

func TestOTPValidFailsClosed(t *testing.T) {
	now := time.Now()
	window := 300 * time.Second

	noCode := &User{}
	if noCode.OTPValid("1234", now, window) {
		t.Error("user without stored code should fail closed")
	}

	code := "1234"
	noStamp := &User{OTPCode: &code}
	if noStamp.OTPValid("1234", now, window) {
		t.Error("user without issuance timestamp should fail closed")
	}
}

func TestPublicUserNationalNumber(t *testing.T) {
	u := &User{MobileNumber: "+14155550100", CountryCode: "+1"}
	pub := u.Public()

	if pub.MobileNumber != "+14155550100" {
		t.Errorf("mobile_number = %q, want full E.164", pub.MobileNumber)
	}
	if pub.NationalNumber != "4155550100" {
		t.Errorf("national_number = %q, want stripped form", pub.NationalNumber)
	}
}
