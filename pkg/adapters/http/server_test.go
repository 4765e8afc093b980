package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/easel-ai/easel"
	"github.com/easel-ai/easel/pkg/domain"
	"github.com/easel-ai/easel/pkg/ops"
)

func newTestServer(t *testing.T, opts ...Option) (*httptest.Server, *easel.Studio) {
	t.Helper()
	n := 0
	studio := easel.New(
		easel.WithIDGenerator(func() string {
			n++
			return fmt.Sprintf("proj-%d", n)
		}),
		easel.WithCatalog(ops.NewCatalog()),
	)
	srv := httptest.NewServer(NewHandler(studio, opts...))
	t.Cleanup(srv.Close)
	return srv, studio
}

func postJSON(t *testing.T, url string, body any) *http.Response {
	t.Helper()
	data, err := json.Marshal(body)
	require.NoError(t, err)
	resp, err := http.Post(url, "application/json", bytes.NewReader(data))
	require.NoError(t, err)
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	defer resp.Body.Close()
	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func TestHealth(t *testing.T) {
	srv, _ := newTestServer(t)

	resp, err := http.Get(srv.URL + "/healthz")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	body := decode[map[string]string](t, resp)
	assert.Equal(t, "ok", body["status"])
	assert.Equal(t, easel.Version, body["version"])
}

func TestListTools(t *testing.T) {
	srv, studio := newTestServer(t)

	resp, err := http.Get(srv.URL + "/tools")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	tools := decode[[]map[string]any](t, resp)
	assert.Len(t, tools, len(studio.Tools()))
	assert.Equal(t, "create_layer", tools[0]["name"])
}

func TestProjectLifecycle(t *testing.T) {
	srv, _ := newTestServer(t)

	resp := postJSON(t, srv.URL+"/projects", map[string]string{"name": "Promo"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	created := decode[domain.Project](t, resp)
	assert.Equal(t, "Promo", created.Name)
	assert.NotEmpty(t, created.ID)

	resp, err := http.Get(srv.URL + "/projects")
	require.NoError(t, err)
	listed := decode[map[string][]string](t, resp)
	assert.Contains(t, listed["projects"], created.ID)

	resp, err = http.Get(srv.URL + "/projects/" + created.ID + "/")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	got := decode[domain.Project](t, resp)
	assert.Equal(t, created.ID, got.ID)

	req, err := http.NewRequest(http.MethodDelete, srv.URL+"/projects/"+created.ID+"/", nil)
	require.NoError(t, err)
	resp, err = http.DefaultClient.Do(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp, err = http.Get(srv.URL + "/projects/" + created.ID + "/")
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestCreateProjectValidation(t *testing.T) {
	srv, _ := newTestServer(t)

	resp := postJSON(t, srv.URL+"/projects", map[string]string{})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestApplyMutation(t *testing.T) {
	srv, studio := newTestServer(t)
	project, err := studio.CreateProject(context.Background(), "Promo")
	require.NoError(t, err)

	resp := postJSON(t, srv.URL+"/projects/"+project.ID+"/mutations", MutationRequest{
		Tool: "create_layer",
		Args: map[string]any{"type": "text", "name": "Headline"},
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	res := decode[ops.Result](t, resp)
	assert.True(t, res.Success)
	assert.NotEmpty(t, res.Details["layer_id"])

	stored, err := studio.Project(context.Background(), project.ID)
	require.NoError(t, err)
	require.Len(t, stored.Layers, 1)
	assert.Equal(t, "Headline", stored.Layers[0].Name)
}

func TestApplyMutationStructuredFailure(t *testing.T) {
	srv, studio := newTestServer(t)
	project, err := studio.CreateProject(context.Background(), "Promo")
	require.NoError(t, err)

	resp := postJSON(t, srv.URL+"/projects/"+project.ID+"/mutations", MutationRequest{
		Tool: "create_layer",
		Args: map[string]any{"type": "hologram", "name": "Nope"},
	})
	// A rejected mutation is a 200 with success=false, not a transport error.
	require.Equal(t, http.StatusOK, resp.StatusCode)
	res := decode[ops.Result](t, resp)
	assert.False(t, res.Success)
	assert.Contains(t, res.Error, "invalid layer type")
}

func TestApplyMutationRejectsAliases(t *testing.T) {
	srv, studio := newTestServer(t)
	project, err := studio.CreateProject(context.Background(), "Promo")
	require.NoError(t, err)
	_, err = studio.Apply(context.Background(), project.ID, "create_layer",
		map[string]any{"type": "text", "name": "Headline"})
	require.NoError(t, err)

	resp := postJSON(t, srv.URL+"/projects/"+project.ID+"/mutations", MutationRequest{
		Tool: "edit_layer",
		Args: map[string]any{"layer": "layer_0", "name": "Renamed"},
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	res := decode[ops.Result](t, resp)
	assert.False(t, res.Success, "positional aliases need an interactive turn")
}

func TestApplyMutationUnknownProject(t *testing.T) {
	srv, _ := newTestServer(t)

	resp := postJSON(t, srv.URL+"/projects/ghost/mutations", MutationRequest{
		Tool: "create_layer",
		Args: map[string]any{"type": "text", "name": "Headline"},
	})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestApplyMutationAccessDenied(t *testing.T) {
	srv, studio := newTestServer(t, WithAccessController(denyAll{}))
	project, err := studio.CreateProject(context.Background(), "Promo")
	require.NoError(t, err)

	resp := postJSON(t, srv.URL+"/projects/"+project.ID+"/mutations", MutationRequest{
		Tool: "create_layer",
		Args: map[string]any{"type": "text", "name": "Headline"},
	})
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	stored, err := studio.Project(context.Background(), project.ID)
	require.NoError(t, err)
	assert.Empty(t, stored.Layers)
}

type denyAll struct{}

func (denyAll) Authorize(ctx context.Context, userID, projectID string) error {
	return errors.New("not yours")
}

func TestEvaluateEndpoint(t *testing.T) {
	srv, studio := newTestServer(t)
	project, err := studio.CreateProject(context.Background(), "Promo")
	require.NoError(t, err)
	_, err = studio.Apply(context.Background(), project.ID, "create_layer",
		map[string]any{"type": "text", "name": "Headline"})
	require.NoError(t, err)
	_, err = studio.Apply(context.Background(), project.ID, "animate_layer", map[string]any{
		"layer": "Headline",
		"keyframes": []any{
			map[string]any{"property": "opacity", "time": 0.0, "value": 0.0},
			map[string]any{"property": "opacity", "time": 2.0, "value": 1.0},
		},
	})
	require.NoError(t, err)

	resp, err := http.Get(srv.URL + "/projects/" + project.ID +
		"/evaluate?layer=Headline&property=opacity&time=1")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body := decode[map[string]any](t, resp)
	assert.InDelta(t, 0.5, body["value"].(float64), 1e-9)
	assert.Equal(t, "opacity", body["property"])
}

func TestEvaluateEndpointValidation(t *testing.T) {
	srv, studio := newTestServer(t)
	project, err := studio.CreateProject(context.Background(), "Promo")
	require.NoError(t, err)

	resp, err := http.Get(srv.URL + "/projects/" + project.ID + "/evaluate?layer=x")
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, err = http.Get(srv.URL + "/projects/" + project.ID +
		"/evaluate?layer=x&property=opacity&time=soon")
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestCORSPreflight(t *testing.T) {
	srv, _ := newTestServer(t)

	req, err := http.NewRequest(http.MethodOptions, srv.URL+"/projects", nil)
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Origin"))
}
