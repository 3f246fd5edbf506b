package ollama_test

import (
	"context"
	"flag"
	"log"
	"os"
	"strconv"
	"testing"
	"time"

	// Packages
	opts "github.com/mutablelogic/go-client"
	ollama "github.com/rxwp5657/ia-agent-demo/pkg/ollama"
	opt "github.com/rxwp5657/ia-agent-demo/pkg/opt"
	schema "github.com/rxwp5657/ia-agent-demo/pkg/schema"
	assert "github.com/stretchr/testify/assert"
)

///////////////////////////////////////////////////////////////////////////////
// TEST SET-UP

var (
	client *ollama.Client
)

func TestMain(m *testing.M) {
	var verbose bool

	// Verbose output
	flag.Parse()
	if f := flag.Lookup("test.v"); f != nil {
		if v, err := strconv.ParseBool(f.Value.String()); err == nil {
			verbose = v
		}
	}

	// Endpoint. When not set, only the tests which don't need a live
	// instance are run.
	endpoint_url := os.Getenv("OLLAMA_URL")
	if endpoint_url == "" {
		log.Print("OLLAMA_URL not set, skipping live tests")
		os.Exit(m.Run())
	}

	// Create client
	var err error
	client, err = ollama.New(endpoint_url, opts.OptTrace(os.Stderr, verbose), opts.OptTimeout(5*time.Minute))
	if err != nil {
		log.Println(err)
		os.Exit(-1)
	}
	os.Exit(m.Run())
}

///////////////////////////////////////////////////////////////////////////////
// TESTS

func Test_client_001(t *testing.T) {
	assert := assert.New(t)
	if client == nil {
		t.Skip("client not created")
	}
	assert.Equal("ollama", client.Name())
	t.Log(client)
}

func Test_client_002(t *testing.T) {
	assert := assert.New(t)
	if client == nil {
		t.Skip("client not created")
	}

	models, err := client.ListModels(context.Background())
	assert.NoError(err)
	for _, model := range models {
		assert.NotEmpty(model.Name)
		assert.Equal("ollama", model.OwnedBy)
		t.Log(model)
	}
}

func Test_client_003(t *testing.T) {
	assert := assert.New(t)
	if client == nil {
		t.Skip("client not created")
	}

	models, err := client.ListModels(context.Background())
	assert.NoError(err)
	if len(models) == 0 {
		t.Skip("no models installed")
	}

	model, err := client.GetModel(context.Background(), models[0].Name)
	assert.NoError(err)
	assert.NotNil(model)
	assert.Equal(models[0].Name, model.Name)
}

func Test_client_004(t *testing.T) {
	assert := assert.New(t)
	if client == nil {
		t.Skip("client not created")
	}

	models, err := client.ListModels(context.Background())
	assert.NoError(err)
	if len(models) == 0 {
		t.Skip("no models installed")
	}

	message, err := client.WithoutSession(context.Background(), models[0], schema.NewMessage(schema.RoleUser, "Reply with the single word: hello"), opt.WithMaxTokens(16))
	assert.NoError(err)
	assert.NotNil(message)
	assert.Equal(schema.RoleAssistant, message.Role)
	t.Log(message)
}
