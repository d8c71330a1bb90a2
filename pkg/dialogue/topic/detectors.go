// Package topic holds the fixed, ordered set of support-topic detectors.
// Each detector is a pure predicate over normalized text; the orchestrator
// walks them in canonical order and returns on the first match.
package topic

import (
	"strings"

	"keelie-chatbot-be/pkg/dialogue/reply"
	"keelie-chatbot-be/pkg/textkit"
)

// Detector identifies one support topic and renders its reply.
type Detector interface {
	Name() string
	Detect(normalized string) (string, bool)
}

// Set is the canonical ordered detector list.
type Set struct {
	detectors []Detector
}

// NewSet builds the canonical ordering: collection, delivery, minimum order,
// production location, how-it's-made, sustainability, help, greeting, goodbye.
func NewSet(texts *reply.Texts, collections *CollectionTable) *Set {
	return &Set{detectors: []Detector{
		&collectionDetector{table: collections},
		&deliveryDetector{texts: texts},
		&minimumOrderDetector{texts: texts},
		&productionDetector{texts: texts},
		&howItsMadeDetector{texts: texts},
		&ecoDetector{texts: texts, table: collections},
		&helpDetector{texts: texts},
		&greetingDetector{texts: texts},
		&goodbyeDetector{texts: texts},
	}}
}

// Match runs the detectors in order and returns the first hit.
func (s *Set) Match(normalized string) (name string, response string, ok bool) {
	for _, d := range s.detectors {
		if resp, hit := d.Detect(normalized); hit {
			return d.Name(), resp, true
		}
	}
	return "", "", false
}

// Detectors returns the ordered list, for table-driven tests.
func (s *Set) Detectors() []Detector {
	return s.detectors
}

// --- collection / range ---

type collectionDetector struct {
	table *CollectionTable
}

func (d *collectionDetector) Name() string { return "collection" }

func (d *collectionDetector) Detect(norm string) (string, bool) {
	if f, ok := d.table.Match(norm); ok {
		return d.table.Render(f), true
	}
	for _, phrase := range []string{"your ranges", "your collections", "what ranges", "what collections", "show ranges", "show collections", "which ranges"} {
		if strings.Contains(norm, phrase) {
			return d.table.Overview(), true
		}
	}
	return "", false
}

// --- delivery / tracking ---

type deliveryDetector struct {
	texts *reply.Texts
}

func (d *deliveryDetector) Name() string { return "delivery" }

var deliveryPhrases = []string{
	"where is my order", "track my order", "order status", "when will it arrive",
	"estimated delivery", "delivery date",
}

var deliveryTokens = []string{
	"delivery", "deliver", "arrive", "arrival", "tracking", "track",
	"dispatch", "shipped", "shipment",
}

func (d *deliveryDetector) Detect(norm string) (string, bool) {
	repaired := textkit.RepairText(norm)
	for _, p := range deliveryPhrases {
		if strings.Contains(repaired, p) {
			return d.texts.DeliveryGuidance(), true
		}
	}
	toks := strings.Fields(repaired)
	for _, want := range deliveryTokens {
		for _, tok := range toks {
			if textkit.TokenClose(want, tok) {
				return d.texts.DeliveryGuidance(), true
			}
		}
	}
	// "eta" is too short for fuzzy matching without false hits
	for _, tok := range toks {
		if tok == "eta" {
			return d.texts.DeliveryGuidance(), true
		}
	}
	return "", false
}

// --- minimum order value ---

type minimumOrderDetector struct {
	texts *reply.Texts
}

func (d *minimumOrderDetector) Name() string { return "minimum_order" }

var minOrderPhrases = []string{
	"minimum order", "min order", "minimum spend", "min spend",
	"minimum purchase", "order minimum", "minimum value",
	"minimum order quantity", "minimum order value", "minimum order price",
}

func (d *minimumOrderDetector) Detect(norm string) (string, bool) {
	repaired := textkit.RepairText(norm)
	for _, p := range minOrderPhrases {
		if strings.Contains(repaired, p) {
			return d.texts.MinimumOrder(), true
		}
	}
	toks := strings.Fields(repaired)
	for _, tok := range toks {
		if tok == "moq" {
			return d.texts.MinimumOrder(), true
		}
	}
	// typo-tolerant combo: a "minimum" word near an order/spend/value word
	hasMin, hasSubject := false, false
	for _, tok := range toks {
		if tok == "min" || textkit.TokenClose("minimum", tok) {
			hasMin = true
			continue
		}
		for _, subject := range []string{"order", "spend", "value", "purchase", "quantity"} {
			if textkit.TokenClose(subject, tok) {
				hasSubject = true
				break
			}
		}
	}
	if hasMin && hasSubject {
		return d.texts.MinimumOrder(), true
	}
	return "", false
}

// --- production location ---

type productionDetector struct {
	texts *reply.Texts
}

func (d *productionDetector) Name() string { return "production_location" }

var productionPhrases = []string{
	"where are your toys produced", "where are your toys made", "where are your toys manufactured",
	"where are the toys produced", "where are the toys made", "where are the toys manufactured",
	"where are they produced", "where are they made", "where are they manufactured",
}

func (d *productionDetector) Detect(norm string) (string, bool) {
	repaired := textkit.RepairText(norm)
	for _, p := range productionPhrases {
		if strings.Contains(repaired, p) {
			return d.texts.ProductionInfo(), true
		}
	}
	if strings.Contains(repaired, "where") &&
		(containsWord(repaired, "toy") || containsWord(repaired, "toys")) {
		for _, verb := range []string{"produced", "made", "manufactured"} {
			if containsWord(repaired, verb) {
				return d.texts.ProductionInfo(), true
			}
		}
	}
	return "", false
}

// --- manufacturing process ---

type howItsMadeDetector struct {
	texts *reply.Texts
}

func (d *howItsMadeDetector) Name() string { return "how_its_made" }

var howItsMadePhrases = []string{
	"how do you make", "how is it made", "how its made", "how it s made",
	"how do you manufacture", "how is it manufactured", "manufacturing process",
	"production process", "how do you produce", "how is it produced",
	"made from", "materials used", "what is it made of", "what s it made of",
	"how are your toys made", "how do you make your toys",
}

func (d *howItsMadeDetector) Detect(norm string) (string, bool) {
	repaired := textkit.RepairText(norm)
	for _, p := range howItsMadePhrases {
		if strings.Contains(repaired, p) {
			if hasEcoTerm(repaired) {
				return d.texts.HowItsMadeEco(), true
			}
			return d.texts.HowItsMade(), true
		}
	}
	return "", false
}

// --- sustainability / eco ---

type ecoDetector struct {
	texts *reply.Texts
	table *CollectionTable
}

func (d *ecoDetector) Name() string { return "sustainability" }

func (d *ecoDetector) Detect(norm string) (string, bool) {
	repaired := textkit.RepairText(norm)
	if !hasEcoTerm(repaired) {
		return "", false
	}
	// a named sub-collection wins over the generic overview
	if f, ok := d.table.Match(repaired); ok {
		return d.table.Render(f), true
	}
	return d.texts.EcoOverview(), true
}

var ecoPhrases = []string{
	"eco friendly", "eco-friendly", "environmentally friendly", "plastic bottles", "keel eco",
}

var ecoTokens = []string{
	"eco", "sustainable", "sustainability", "environment", "recycled",
	"recycle", "recyclable", "fsc", "keeleco",
}

func hasEcoTerm(repaired string) bool {
	for _, p := range ecoPhrases {
		if strings.Contains(repaired, p) {
			return true
		}
	}
	for _, tok := range strings.Fields(repaired) {
		for _, want := range ecoTokens {
			if tok == want {
				return true
			}
		}
		if textkit.TokenClose("sustainable", tok) || textkit.TokenClose("recycled", tok) || textkit.TokenClose("keeleco", tok) {
			return true
		}
	}
	return false
}

// --- help / capabilities ---

type helpDetector struct {
	texts *reply.Texts
}

func (d *helpDetector) Name() string { return "help" }

func (d *helpDetector) Detect(norm string) (string, bool) {
	repaired := textkit.RepairText(norm)
	for _, p := range []string{"what can you do", "how can you help", "what do you do", "what can you help"} {
		if strings.Contains(repaired, p) {
			return d.texts.HelpMenu(), true
		}
	}
	for _, tok := range strings.Fields(repaired) {
		if tok == "help" || tok == "hellp" || tok == "halp" {
			return d.texts.HelpMenu(), true
		}
	}
	return "", false
}

// --- greeting ---

type greetingDetector struct {
	texts *reply.Texts
}

func (d *greetingDetector) Name() string { return "greeting" }

func (d *greetingDetector) Detect(norm string) (string, bool) {
	if IsGreeting(norm) {
		return d.texts.Greeting(), true
	}
	return "", false
}

// --- goodbye ---

type goodbyeDetector struct {
	texts *reply.Texts
}

func (d *goodbyeDetector) Name() string { return "goodbye" }

func (d *goodbyeDetector) Detect(norm string) (string, bool) {
	if IsGoodbye(norm) {
		return d.texts.Farewell(), true
	}
	return "", false
}

var greetWords = map[string]bool{
	"hi": true, "hello": true, "hey": true, "hiya": true, "howdy": true,
	"morning": true, "afternoon": true, "evening": true,
}

// IsGreeting reports whether the message opens with a greeting. Stretched
// forms ("hiiii") are matched through token repair.
func IsGreeting(normalized string) bool {
	toks := textkit.RepairTokens(normalized)
	if len(toks) == 0 {
		return false
	}
	if greetWords[toks[0]] {
		return true
	}
	if toks[0] == "good" && len(toks) > 1 && greetWords[toks[1]] {
		return true
	}
	return false
}

var goodbyeWords = map[string]bool{
	"bye": true, "goodbye": true, "farewell": true, "cya": true,
}

// IsGoodbye reports whether the message is a sign-off.
func IsGoodbye(normalized string) bool {
	repaired := textkit.RepairText(normalized)
	if strings.Contains(repaired, "see you") || strings.Contains(repaired, "good night") {
		return true
	}
	for _, tok := range strings.Fields(repaired) {
		if goodbyeWords[tok] {
			return true
		}
	}
	return false
}

func containsWord(text, word string) bool {
	for _, tok := range strings.Fields(text) {
		if tok == word {
			return true
		}
	}
	return false
}
