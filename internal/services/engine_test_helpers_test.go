package services

import "testing"

func intPtr(value int) *int {
	return &value
}

func boolPtr(value bool) *bool {
	return &value
}

func floatPtr(value float64) *float64 {
	return &value
}

func mustDefaultRuleBook(t *testing.T) *RuleBook {
	t.Helper()
	book, err := DefaultRuleBook()
	if err != nil {
		t.Fatalf("load default rule book: %v", err)
	}
	return book
}
