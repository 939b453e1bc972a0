// Package greeting picks the assistant's opening line.
package greeting

import (
	"fmt"
	"strconv"
	"strings"
)

// Options selects a greeting. Urgent wins over Name, which wins over Time.
type Options struct {
	Name   string
	Time   string // "HH" or "HH:MM"; only the hour is used
	Urgent bool
}

const (
	urgentText    = "VendorSelector-AI here! Let's quickly evaluate your supplier data."
	nameText      = "Hello, %s! I'm VendorSelector-AI, here to help select the best supplier."
	morningText   = "Good morning! VendorSelector-AI is ready to assist you."
	afternoonText = "Good afternoon! Let's evaluate your supplier data together."
	eveningText   = "Good evening! I'm here to help review your supplier details."
	lateText      = "Hello! VendorSelector-AI is working late to assist you."
	defaultText   = "Greetings! I am VendorSelector-AI, your supplier evaluation assistant. " +
		"Please share your supplier data in CSV or JSON format to begin."
)

// Greeting returns the greeting for opts.
func Greeting(opts Options) (string, error) {
	switch {
	case opts.Urgent:
		return urgentText, nil
	case opts.Name != "":
		return fmt.Sprintf(nameText, opts.Name), nil
	case opts.Time != "":
		hour, err := Hour(opts.Time)
		if err != nil {
			return "", err
		}
		return byHour(hour), nil
	default:
		return defaultText, nil
	}
}

// Hour extracts the hour from "HH" or "HH:MM".
func Hour(t string) (int, error) {
	h, _, _ := strings.Cut(strings.TrimSpace(t), ":")
	hour, err := strconv.Atoi(h)
	if err != nil {
		return 0, fmt.Errorf("invalid time %q: expected HH or HH:MM", t)
	}
	return hour, nil
}

func byHour(hour int) string {
	switch {
	case hour >= 5 && hour < 12:
		return morningText
	case hour >= 12 && hour < 17:
		return afternoonText
	case hour >= 17 && hour < 22:
		return eveningText
	default:
		return lateText
	}
}
