package helpers

import (
	"strings"
)

// SplitList splits a comma separated value, trimming items and dropping empty ones.
func SplitList(value string) []string {
	result := []string{}
	for _, item := range strings.Split(value, ",") {
		item = strings.TrimSpace(item)
		if item != "" {
			result = append(result, item)
		}
	}
	return result
}

// TrimList trims every item and drops empty ones. Order is kept.
func TrimList(values []string) []string {
	result := make([]string, 0, len(values))
	for _, item := range values {
		item = strings.TrimSpace(item)
		if item != "" {
			result = append(result, item)
		}
	}
	return result
}

func OrDefault(value, defaultValue string) string {
	if value == "" {
		return defaultValue
	}
	return value
}

func Contains(list []string, value string) bool {
	for _, item := range list {
		if item == value {
			return true
		}
	}
	return false
}
