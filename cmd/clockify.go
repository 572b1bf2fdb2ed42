package cmd

import (
	"clocktransfer/clockify"
	"clocktransfer/config"
)

const userAgent = "clocktransfer/1.0"

// newClockifyClient is replaced in tests.
var newClockifyClient = func(cfg config.ClockifyConfig) (clockify.Client, error) {
	client, err := clockify.NewClient(clockify.ClientConfig{
		BaseURL:   cfg.URL,
		APIKey:    cfg.APIKey,
		UserAgent: userAgent,
	})
	if err != nil {
		return nil, err
	}
	return client, nil
}
