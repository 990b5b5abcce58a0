package main

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

type closableGenerationClient struct {
	closed int
}

func (c *closableGenerationClient) GenerateItinerary(ctx context.Context, prompt string) (string, error) {
	return "{}", nil
}

func (c *closableGenerationClient) Close() error {
	c.closed++
	return nil
}

type plainGenerationClient struct{}

func (plainGenerationClient) GenerateItinerary(ctx context.Context, prompt string) (string, error) {
	return "{}", nil
}

func TestCloseGenerationClientClosesClosableClients(t *testing.T) {
	client := &closableGenerationClient{}

	closeGenerationClient(client)

	assert.Equal(t, 1, client.closed)
}

func TestCloseGenerationClientIgnoresClientsWithoutClose(t *testing.T) {
	assert.NotPanics(t, func() {
		closeGenerationClient(plainGenerationClient{})
	})
}
