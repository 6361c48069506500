package environment_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/uiwkit/pkg/environment"
)

func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected environment.Environment
		deployed bool
	}{
		{name: "empty is development", input: "", expected: environment.Development},
		{name: "dev alias", input: "dev", expected: environment.Development},
		{name: "stage alias", input: "Stage", expected: environment.Staging, deployed: true},
		{name: "prod alias", input: " prod ", expected: environment.Production, deployed: true},
		{name: "full production", input: "production", expected: environment.Production, deployed: true},
		{name: "custom kept", input: "Preview", expected: environment.Environment("preview")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			env := environment.Parse(tt.input)
			assert.Equal(t, tt.expected, env)
			assert.Equal(t, tt.deployed, env.IsDeployed())
		})
	}

	assert.True(t, environment.Parse("prod").IsProduction())
	assert.True(t, environment.Parse("stage").IsStaging())
	assert.True(t, environment.Parse("").IsDevelopment())
	assert.Equal(t, "staging", environment.Staging.String())
}
