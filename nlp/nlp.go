package nlp

import (
	"context"
	"encoding/base64"
	"fmt"
	"log"
	"os"
	"sync"

	language "cloud.google.com/go/language/apiv2"
	"cloud.google.com/go/language/apiv2/languagepb"
	"google.golang.org/api/option"
)

// languageClient is a singleton language client instance.
var (
	languageClient *language.Client
	clientOnce     sync.Once
	initErr        error
)

// InitLanguageClient initializes and returns a language client using
// the base64 encoded credentials in NATURAL_LANGUAGE_CREDENTIALS.
func InitLanguageClient() (*language.Client, error) {
	clientOnce.Do(func() {
		encodedCreds := os.Getenv("NATURAL_LANGUAGE_CREDENTIALS")
		if encodedCreds == "" {
			initErr = fmt.Errorf("NATURAL_LANGUAGE_CREDENTIALS environment variable not set")
			return
		}

		creds, err := base64.StdEncoding.DecodeString(encodedCreds)
		if err != nil {
			initErr = fmt.Errorf("failed to decode Natural Language credentials: %w", err)
			return
		}

		opt := option.WithCredentialsJSON(creds)
		languageClient, initErr = language.NewClient(context.Background(), opt)
		if initErr != nil {
			log.Printf("Failed to create Natural Language client: %v", initErr)
		}
	})
	return languageClient, initErr
}

// CloseLanguageClient closes the language client.
func CloseLanguageClient() {
	if languageClient != nil {
		languageClient.Close()
	}
}

// ExtractLocations sends a chat message to the Cloud Natural Language
// API and returns the LOCATION entity names it finds, in order. Used to
// pick a city out of free-text citizen queries.
func ExtractLocations(client *language.Client, text string) ([]string, error) {
	ctx := context.Background()
	req := &languagepb.AnalyzeEntitiesRequest{
		Document: &languagepb.Document{
			Source: &languagepb.Document_Content{
				Content: text,
			},
			Type: languagepb.Document_PLAIN_TEXT,
		},
		EncodingType: languagepb.EncodingType_UTF8,
	}

	resp, err := client.AnalyzeEntities(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("AnalyzeEntities error: %w", err)
	}

	var locations []string
	for _, e := range resp.Entities {
		if e.Type == languagepb.Entity_LOCATION || e.Type == languagepb.Entity_ADDRESS {
			locations = append(locations, e.Name)
		}
	}
	return locations, nil
}
