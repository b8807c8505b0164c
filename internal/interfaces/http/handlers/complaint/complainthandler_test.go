package complaint

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resolveit/internal/application/complaint/dto"
	"resolveit/internal/application/complaint/usecases"
	"resolveit/internal/interfaces/http/handlers/testutil"
	"resolveit/internal/shared/errors"
)

type mockSubmitUC struct {
	result *usecases.SubmitComplaintResult
	err    error
}

func (m *mockSubmitUC) Execute(_ context.Context, _ usecases.SubmitComplaintCommand) (*usecases.SubmitComplaintResult, error) {
	return m.result, m.err
}

type mockGetUC struct {
	result *dto.ComplaintDTO
	err    error

	gotQuery usecases.GetComplaintQuery
}

func (m *mockGetUC) Execute(_ context.Context, query usecases.GetComplaintQuery) (*dto.ComplaintDTO, error) {
	m.gotQuery = query
	return m.result, m.err
}

type mockListUserUC struct {
	result []*dto.ComplaintDTO
	err    error
	called bool
}

func (m *mockListUserUC) Execute(_ context.Context, _ usecases.ListUserComplaintsQuery) ([]*dto.ComplaintDTO, error) {
	m.called = true
	return m.result, m.err
}

type mockListAllUC struct {
	result []*dto.ComplaintDTO
	err    error

	called   bool
	gotQuery usecases.ListAllComplaintsQuery
}

func (m *mockListAllUC) Execute(_ context.Context, query usecases.ListAllComplaintsQuery) ([]*dto.ComplaintDTO, error) {
	m.called = true
	m.gotQuery = query
	return m.result, m.err
}

type mockUpdateStatusUC struct {
	result *usecases.UpdateStatusResult
	err    error

	gotCmd usecases.UpdateStatusCommand
}

func (m *mockUpdateStatusUC) Execute(_ context.Context, cmd usecases.UpdateStatusCommand) (*usecases.UpdateStatusResult, error) {
	m.gotCmd = cmd
	return m.result, m.err
}

type mockAssignUC struct {
	result *usecases.AssignComplaintResult
	err    error
}

func (m *mockAssignUC) Execute(_ context.Context, _ usecases.AssignComplaintCommand) (*usecases.AssignComplaintResult, error) {
	return m.result, m.err
}

type testDeps struct {
	submitUC       usecases.SubmitComplaintExecutor
	getUC          usecases.GetComplaintExecutor
	listUserUC     usecases.ListUserComplaintsExecutor
	listAllUC      usecases.ListAllComplaintsExecutor
	updateStatusUC usecases.UpdateStatusExecutor
	assignUC       usecases.AssignComplaintExecutor
}

func newTestHandler(deps testDeps) *ComplaintHandler {
	return NewComplaintHandler(
		deps.submitUC,
		deps.getUC,
		deps.listUserUC,
		deps.listAllUC,
		deps.updateStatusUC,
		deps.assignUC,
	)
}

func TestComplaintHandler_SubmitComplaint_Success(t *testing.T) {
	mockUC := &mockSubmitUC{
		result: &usecases.SubmitComplaintResult{
			ComplaintID: 1,
			Status:      "pending",
			CreatedAt:   time.Now().UTC(),
		},
	}
	handler := newTestHandler(testDeps{submitUC: mockUC})

	reqBody := SubmitComplaintRequest{
		Title:       "Refund not processed",
		Description: "Requested a refund two weeks ago, still nothing.",
		Category:    "payment",
		Priority:    "high",
	}
	c, w := testutil.NewTestContext(http.MethodPost, "/complaints", reqBody)
	testutil.SetAuthContext(c, 1, "user")

	handler.SubmitComplaint(c)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.True(t, resp.Success)
}

func TestComplaintHandler_SubmitComplaint_BindError(t *testing.T) {
	handler := newTestHandler(testDeps{})

	reqBody := map[string]string{"title": "only title"}
	c, w := testutil.NewTestContext(http.MethodPost, "/complaints", reqBody)
	testutil.SetAuthContext(c, 1, "user")

	handler.SubmitComplaint(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.False(t, resp.Success)
}

func TestComplaintHandler_SubmitComplaint_InvalidCategory(t *testing.T) {
	handler := newTestHandler(testDeps{})

	reqBody := SubmitComplaintRequest{
		Title:       "Broken page",
		Description: "The page does not load.",
		Category:    "nonsense",
	}
	c, w := testutil.NewTestContext(http.MethodPost, "/complaints", reqBody)
	testutil.SetAuthContext(c, 1, "user")

	handler.SubmitComplaint(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestComplaintHandler_GetComplaint_Success(t *testing.T) {
	mockUC := &mockGetUC{
		result: &dto.ComplaintDTO{ID: 42, Title: "Refund not processed", Status: "pending"},
	}
	handler := newTestHandler(testDeps{getUC: mockUC})

	c, w := testutil.NewTestContext(http.MethodGet, "/complaints/42", nil)
	testutil.SetAuthContext(c, 7, "admin")
	testutil.SetURLParam(c, "id", "42")

	handler.GetComplaint(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, uint(42), mockUC.gotQuery.ComplaintID)
	assert.Equal(t, uint(7), mockUC.gotQuery.RequesterID)
	assert.True(t, mockUC.gotQuery.RequesterRole.IsAdmin())
}

func TestComplaintHandler_GetComplaint_Forbidden(t *testing.T) {
	mockUC := &mockGetUC{err: errors.NewForbiddenError("access denied")}
	handler := newTestHandler(testDeps{getUC: mockUC})

	c, w := testutil.NewTestContext(http.MethodGet, "/complaints/42", nil)
	testutil.SetAuthContext(c, 9, "user")
	testutil.SetURLParam(c, "id", "42")

	handler.GetComplaint(c)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestComplaintHandler_GetComplaint_InvalidID(t *testing.T) {
	handler := newTestHandler(testDeps{})

	c, w := testutil.NewTestContext(http.MethodGet, "/complaints/abc", nil)
	testutil.SetAuthContext(c, 1, "user")
	testutil.SetURLParam(c, "id", "abc")

	handler.GetComplaint(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestComplaintHandler_ListComplaints_UserSeesOwn(t *testing.T) {
	listUser := &mockListUserUC{result: []*dto.ComplaintDTO{{ID: 1}, {ID: 2}}}
	listAll := &mockListAllUC{}
	handler := newTestHandler(testDeps{listUserUC: listUser, listAllUC: listAll})

	c, w := testutil.NewTestContext(http.MethodGet, "/complaints", nil)
	testutil.SetAuthContext(c, 3, "user")

	handler.ListComplaints(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, listUser.called)
	assert.False(t, listAll.called)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))

	var list struct {
		Items []json.RawMessage `json:"items"`
		Total int64             `json:"total"`
	}
	require.NoError(t, json.Unmarshal(resp.Data, &list))
	assert.Len(t, list.Items, 2)
	assert.Equal(t, int64(2), list.Total)
}

func TestComplaintHandler_ListComplaints_AdminSeesAll(t *testing.T) {
	listUser := &mockListUserUC{}
	listAll := &mockListAllUC{result: []*dto.ComplaintDTO{{ID: 1}}}
	handler := newTestHandler(testDeps{listUserUC: listUser, listAllUC: listAll})

	c, w := testutil.NewTestContext(http.MethodGet, "/complaints", nil)
	testutil.SetAuthContext(c, 1, "admin")
	testutil.SetQueryParams(c, map[string]string{"status": "pending"})

	handler.ListComplaints(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, listAll.called)
	assert.False(t, listUser.called)
	assert.Equal(t, "pending", listAll.gotQuery.Status)
}

func TestComplaintHandler_UpdateStatus_Success(t *testing.T) {
	mockUC := &mockUpdateStatusUC{
		result: &usecases.UpdateStatusResult{
			ComplaintID: 5,
			OldStatus:   "in_progress",
			NewStatus:   "resolved",
			UpdatedAt:   time.Now().UTC(),
		},
	}
	handler := newTestHandler(testDeps{updateStatusUC: mockUC})

	reqBody := UpdateStatusRequest{Status: "resolved", ResolutionNote: "Replaced the faulty part."}
	c, w := testutil.NewTestContext(http.MethodPatch, "/complaints/5/status", reqBody)
	testutil.SetAuthContext(c, 2, "admin")
	testutil.SetURLParam(c, "id", "5")

	handler.UpdateStatus(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, uint(5), mockUC.gotCmd.ComplaintID)
	assert.Equal(t, "resolved", mockUC.gotCmd.NewStatus)
	assert.Equal(t, "Replaced the faulty part.", mockUC.gotCmd.ResolutionNote)
	assert.Equal(t, uint(2), mockUC.gotCmd.ChangedBy)
}

func TestComplaintHandler_UpdateStatus_UnknownStatusRejected(t *testing.T) {
	handler := newTestHandler(testDeps{})

	reqBody := map[string]string{"status": "escalated"}
	c, w := testutil.NewTestContext(http.MethodPatch, "/complaints/5/status", reqBody)
	testutil.SetAuthContext(c, 2, "admin")
	testutil.SetURLParam(c, "id", "5")

	handler.UpdateStatus(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestComplaintHandler_UpdateStatus_IllegalTransition(t *testing.T) {
	mockUC := &mockUpdateStatusUC{err: errors.NewConflictError("cannot transition from resolved to pending")}
	handler := newTestHandler(testDeps{updateStatusUC: mockUC})

	reqBody := UpdateStatusRequest{Status: "pending"}
	c, w := testutil.NewTestContext(http.MethodPatch, "/complaints/5/status", reqBody)
	testutil.SetAuthContext(c, 2, "admin")
	testutil.SetURLParam(c, "id", "5")

	handler.UpdateStatus(c)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestComplaintHandler_AssignComplaint_Success(t *testing.T) {
	mockUC := &mockAssignUC{
		result: &usecases.AssignComplaintResult{
			ComplaintID: 5,
			AssigneeID:  8,
			Status:      "in_progress",
			UpdatedAt:   time.Now().UTC(),
		},
	}
	handler := newTestHandler(testDeps{assignUC: mockUC})

	reqBody := AssignComplaintRequest{AssigneeID: 8}
	c, w := testutil.NewTestContext(http.MethodPost, "/complaints/5/assign", reqBody)
	testutil.SetAuthContext(c, 2, "admin")
	testutil.SetURLParam(c, "id", "5")

	handler.AssignComplaint(c)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestComplaintHandler_AssignComplaint_MissingAssignee(t *testing.T) {
	handler := newTestHandler(testDeps{})

	c, w := testutil.NewTestContext(http.MethodPost, "/complaints/5/assign", map[string]string{})
	testutil.SetAuthContext(c, 2, "admin")
	testutil.SetURLParam(c, "id", "5")

	handler.AssignComplaint(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
