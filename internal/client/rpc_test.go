package client

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"fotolia/catalog/internal/config"
	"fotolia/catalog/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const searchResponse = `<?xml version="1.0" encoding="UTF-8"?>
<methodResponse><params><param><value><struct>
<member><name>nb_results</name><value><int>23</int></value></member>
<member><name>0</name><value><struct>
<member><name>id</name><value><int>1001</int></value></member>
<member><name>title</name><value><string>Forest path</string></value></member>
</struct></value></member>
</struct></value></param></params></methodResponse>`

const faultResponse = `<?xml version="1.0" encoding="UTF-8"?>
<methodResponse><fault><value><struct>
<member><name>faultCode</name><value><int>4</int></value></member>
<member><name>faultString</name><value><string>Invalid API key</string></value></member>
</struct></value></fault></methodResponse>`

type countingSupplier struct {
	mutex sync.Mutex
	calls int
}

func (s *countingSupplier) Get() string {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.calls++
	return ""
}

func (s *countingSupplier) Len() int { return 0 }

func newTestCaller(t *testing.T, endpoint string) Caller {
	t.Helper()
	caller, err := NewRPCClient(config.APIConfig{Endpoint: endpoint, APIKey: "secret-key", Timeout: 5}, nil)
	require.NoError(t, err)
	return caller
}

func TestNewRPCClientRequiresAPIKey(t *testing.T) {
	_, err := NewRPCClient(config.APIConfig{Endpoint: "http://localhost"}, nil)
	assert.ErrorIs(t, err, domain.ErrAPIKeyRequired)
}

func TestCallDecodesStruct(t *testing.T) {
	var body string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, _ := io.ReadAll(r.Body)
		body = string(raw)
		w.Header().Set("Content-Type", "text/xml")
		_, _ = io.WriteString(w, searchResponse)
	}))
	defer server.Close()

	caller := newTestCaller(t, server.URL)

	result, err := caller.Call(context.Background(), "getSearchResults", map[string]interface{}{"words": "forest"}, 2)
	require.NoError(t, err)

	assert.Contains(t, body, "<methodName>xmlrpc.getSearchResults</methodName>")
	assert.Contains(t, body, "secret-key")
	assert.Less(t, strings.Index(body, "secret-key"), strings.Index(body, "forest"))

	response, ok := AsRecord(result)
	require.True(t, ok)
	assert.EqualValues(t, 23, response["nb_results"])

	entries := Entries(response, "nb_results")
	require.Len(t, entries, 1)
	assert.Equal(t, "0", entries[0].Key)
	assert.Equal(t, "Forest path", entries[0].Record["title"])
}

func TestCallFault(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, faultResponse)
	}))
	defer server.Close()

	_, err := newTestCaller(t, server.URL).Call(context.Background(), "getData")
	require.Error(t, err)

	var commErr *domain.CommunicationError
	require.True(t, errors.As(err, &commErr))
	assert.True(t, commErr.IsFault())
	assert.Equal(t, 4, commErr.Code)
	assert.Equal(t, "Invalid API key", commErr.Message)
	assert.Equal(t, "getData", commErr.Method)
}

func TestCallHTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	_, err := newTestCaller(t, server.URL).Call(context.Background(), "getData")

	var commErr *domain.CommunicationError
	require.True(t, errors.As(err, &commErr))
	assert.False(t, commErr.IsFault())
	assert.Contains(t, err.Error(), "502")
}

func TestCallTransportFailureRotatesProxy(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	endpoint := server.URL
	server.Close()

	supplier := &countingSupplier{}
	caller, err := NewRPCClient(config.APIConfig{Endpoint: endpoint, APIKey: "k", Timeout: 2}, supplier)
	require.NoError(t, err)
	assert.Equal(t, 1, supplier.calls)

	_, err = caller.Call(context.Background(), "getData")

	var commErr *domain.CommunicationError
	require.True(t, errors.As(err, &commErr))
	assert.False(t, commErr.IsFault())
	assert.Equal(t, 2, supplier.calls)
}
