package tests

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"

	. "github.com/trezcool/matokeo/apps/api/echo"
	"github.com/trezcool/matokeo/core"
	"github.com/trezcool/matokeo/core/student"
	inmemdb "github.com/trezcool/matokeo/storage/inmem"
	"github.com/trezcool/matokeo/tests"
)

type httpErr struct {
	Error      string `json:"error"`
	Suggestion string `json:"suggestion,omitempty"`
}

type httpTest struct {
	name     string
	method   string
	path     string
	body     []byte
	wantCode int
	wantData []byte
	ordered  bool // compare list items in order
}

func setup(t *testing.T, students ...*student.Student) (Server, *inmemdb.Repository) {
	validate, translator := testutil.NewValidator()
	svc, repo := testutil.NewServiceWithValidator(t, validate, students...)

	conf := &core.Config{AppName: "Matokeo", Env: "TEST", TestMode: true}
	return NewServer(
		ServerDeps{
			Conf:       conf,
			Logger:     testutil.NewLogger(),
			StudentSvc: svc,
			Translator: translator,
		},
	), repo
}

func newRequest(method, path string, data ...[]byte) (*http.Request, *httptest.ResponseRecorder) {
	var body bytes.Buffer
	if len(data) > 0 {
		body.Write(data[0])
	}
	req := httptest.NewRequest(method, path, &body)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	return req, rec
}

func marchallObj(t *testing.T, obj interface{}) []byte {
	data, err := json.Marshal(obj)
	if err != nil {
		t.Fatalf("marchallObj() failed: %v", err)
	}
	return data
}

func jsonBytesEqual(t *testing.T, b1, b2 []byte, ordered bool) (bool, error) {
	var j1, j2 interface{}
	if err := json.Unmarshal(b1, &j1); err != nil {
		return false, err
	}
	if err := json.Unmarshal(b2, &j2); err != nil {
		return false, err
	}
	if reflect.DeepEqual(j1, j2) {
		return true, nil
	}
	if ordered || j1 == nil || j2 == nil {
		return false, nil
	}
	return assert.ElementsMatch(t, j1, j2), nil
}

func checkCodeAndData(t *testing.T, tt httpTest, rec *httptest.ResponseRecorder) {
	if rec.Code != tt.wantCode {
		t.Errorf("failed! code = %v; wantCode %v", rec.Code, tt.wantCode)
	}
	ok, err := jsonBytesEqual(t, rec.Body.Bytes(), tt.wantData, tt.ordered)
	if err != nil {
		t.Errorf("jsonBytesEqual() failed to compare; err %v", err)
	}
	if !ok {
		t.Errorf("failed! data = %v; wantData %v", rec.Body.String(), string(tt.wantData))
	}
}
