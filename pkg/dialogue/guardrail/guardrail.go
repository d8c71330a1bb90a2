// Package guardrail detects personal or order-identifying information in a
// message. It runs before anything else in the pipeline: a hit short-circuits
// the whole turn with a privacy notice, including an in-progress
// disambiguation.
package guardrail

import (
	"regexp"
	"strings"

	"keelie-chatbot-be/pkg/textkit"
)

var (
	emailRe = regexp.MustCompile(`[A-Za-z0-9._%+\-]+@[A-Za-z0-9.\-]+\.[A-Za-z]{2,}`)

	// Loose phone shape: optional international prefix, digits with common
	// separators. A candidate only counts when it carries >=8 digits.
	phoneCandidateRe = regexp.MustCompile(`\+?\d[\d\s().\-]{6,}\d`)

	// UK-style postcode.
	postcodeRe = regexp.MustCompile(`(?i)\b[A-Z]{1,2}\d[A-Z\d]?\s*\d[A-Z]{2}\b`)

	houseNumberRe = regexp.MustCompile(`^\d{1,5}[a-z]?$`)

	// Explicit order/invoice/PO/SO reference: '#' or a recognisable prefix
	// followed by an alphanumeric block.
	refCodeRe = regexp.MustCompile(`(?i)(?:#\s*[a-z0-9\-]{4,}|\b(?:ord|order|inv|invoice|po|so|ref|reference|rma)\s*(?:no\.?|number|num|#)?\s*[:\-]?\s*[a-z]{0,3}\d[a-z0-9\-]{3,})`)

	longDigitRunRe = regexp.MustCompile(`\d{6,}`)
	longAlnumRe    = regexp.MustCompile(`(?i)\b[a-z0-9]{10,}\b`)

	// Common parcel-tracking shapes (UPS, DHL/Hermes, Royal Mail).
	trackingCodeRe = regexp.MustCompile(`\b(?:1Z[0-9A-Z]{8,}|JJ?D\d{9,}|[A-Z]{2}\d{9}GB)\b`)
)

var streetWords = []string{
	"road", "street", "lane", "avenue", "close", "drive", "way", "court",
	"place", "crescent", "terrace", "gardens", "grove", "hill", "park",
}

var sensitiveCues = []string{
	"order", "invoice", "account", "tracking", "dispatch", "return",
	"purchase order", "sales order", "reference", "consignment", "waybill",
	"rma", "shipment", "delivery note",
}

// ContainsPersonalInfo reports whether text carries personal or
// order-identifying data. Evaluated on the raw message, before any state
// mutation.
func ContainsPersonalInfo(text string) bool {
	if strings.TrimSpace(text) == "" {
		return false
	}

	if emailRe.MatchString(text) {
		return true
	}
	if hasPhoneNumber(text) {
		return true
	}
	if postcodeRe.MatchString(text) {
		return true
	}
	if hasStreetAddress(text) {
		return true
	}

	// Reference-like content only counts next to a sensitive cue word:
	// "my order 123456" is an order identifier, a bare "123456" is not.
	if hasSensitiveCue(text) {
		if refCodeRe.MatchString(text) {
			return true
		}
		if longDigitRunRe.MatchString(text) {
			return true
		}
		if hasMixedAlnumRun(text) {
			return true
		}
		if trackingCodeRe.MatchString(strings.ToUpper(text)) {
			return true
		}
	}
	return false
}

func hasPhoneNumber(text string) bool {
	for _, cand := range phoneCandidateRe.FindAllString(text, -1) {
		digits := 0
		for _, r := range cand {
			if r >= '0' && r <= '9' {
				digits++
			}
		}
		if digits >= 8 {
			return true
		}
	}
	return false
}

func hasStreetAddress(text string) bool {
	tokens := textkit.Tokenize(text)
	hasStreetWord := false
	hasHouseNumber := false
	for _, tok := range tokens {
		if houseNumberRe.MatchString(tok) {
			hasHouseNumber = true
			continue
		}
		for _, w := range streetWords {
			if tok == w {
				hasStreetWord = true
				break
			}
		}
	}
	return hasStreetWord && hasHouseNumber
}

// hasMixedAlnumRun finds a >=10 character run containing both letters and
// digits. RE2 has no lookahead, so the mixed check happens here.
func hasMixedAlnumRun(text string) bool {
	for _, run := range longAlnumRe.FindAllString(text, -1) {
		hasLetter, hasDigit := false, false
		for _, r := range run {
			switch {
			case r >= '0' && r <= '9':
				hasDigit = true
			default:
				hasLetter = true
			}
		}
		if hasLetter && hasDigit {
			return true
		}
	}
	return false
}

func hasSensitiveCue(text string) bool {
	norm := textkit.Normalize(text)
	for _, cue := range sensitiveCues {
		if strings.Contains(norm, cue) {
			return true
		}
	}
	return false
}
