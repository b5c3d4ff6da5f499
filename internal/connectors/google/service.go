package google

import (
	"context"
	"fmt"

	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

// Credentials selects how the Sheets API is called.
// CredentialsFile wins over APIKey; with neither, requests are unauthenticated.
type Credentials struct {
	APIKey          string
	CredentialsFile string
}

// NewSheetsService creates a Sheets API service. Extra options are appended
// after the credential options.
func NewSheetsService(ctx context.Context, creds Credentials, extra ...option.ClientOption) (*sheets.Service, error) {
	opts, err := clientOptions(ctx, creds)
	if err != nil {
		return nil, err
	}
	svc, err := sheets.NewService(ctx, append(opts, extra...)...)
	if err != nil {
		return nil, fmt.Errorf("create sheets service: %w", err)
	}
	return svc, nil
}

func clientOptions(ctx context.Context, creds Credentials) ([]option.ClientOption, error) {
	switch {
	case creds.CredentialsFile != "":
		ts, err := ServiceAccountTokenSource(ctx, creds.CredentialsFile)
		if err != nil {
			return nil, err
		}
		return []option.ClientOption{option.WithTokenSource(ts)}, nil
	case creds.APIKey != "":
		return []option.ClientOption{option.WithAPIKey(creds.APIKey)}, nil
	default:
		return []option.ClientOption{option.WithoutAuthentication()}, nil
	}
}
