package search

import (
	"context"
	"strconv"
	"sync"

	"github.com/spf13/cast"
)

type call struct {
	method string
	args   []interface{}
}

type mockCaller struct {
	mutex   sync.Mutex
	calls   []call
	respond func(method string, args []interface{}) (interface{}, error)
}

func (m *mockCaller) Call(_ context.Context, method string, args ...interface{}) (interface{}, error) {
	m.mutex.Lock()
	m.calls = append(m.calls, call{method: method, args: args})
	m.mutex.Unlock()

	return m.respond(method, args)
}

func (m *mockCaller) callCount() int {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	return len(m.calls)
}

func (m *mockCaller) lastParams() map[string]interface{} {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	return m.calls[len(m.calls)-1].args[0].(map[string]interface{})
}

// pagedCatalog answers searches over total results, perPage records per offset window.
func pagedCatalog(total int) *mockCaller {
	return &mockCaller{
		respond: func(_ string, args []interface{}) (interface{}, error) {
			params := args[0].(map[string]interface{})
			limit := cast.ToInt(params["limit"])
			offset := cast.ToInt(params["offset"])

			response := map[string]interface{}{"nb_results": int64(total)}
			for i := 0; i < limit && offset+i <= total; i++ {
				id := offset + i
				response[strconv.Itoa(i)] = map[string]interface{}{
					"id":    int64(id),
					"title": "medium " + strconv.Itoa(id),
				}
			}
			return response, nil
		},
	}
}
