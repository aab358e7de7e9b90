package apiv1

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	applicationhandler "venue-hiring-backend/lib/applications"
	jobboardhandler "venue-hiring-backend/lib/job-board"
	apperrors "venue-hiring-backend/lib/utils/app-errors"
	"venue-hiring-backend/models"
	apimodels "venue-hiring-backend/models/api"
	applicationapimodels "venue-hiring-backend/models/api/application"
	jobboardapimodels "venue-hiring-backend/models/api/jobboard"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
)

type fakeJobBoard struct {
	createErr error
	getErr    error
}

func (f fakeJobBoard) Create(userID string, data jobboardapimodels.JobPostingData) (jobboardhandler.PostingResult, error) {
	if f.createErr != nil {
		return jobboardhandler.PostingResult{}, f.createErr
	}
	return jobboardhandler.PostingResult{JobBoardID: "jb-1", OrganizationPostingID: "op-1"}, nil
}

func (f fakeJobBoard) GetByID(id string) (jobboardapimodels.JobPostingView, error) {
	return jobboardapimodels.JobPostingView{ID: id}, f.getErr
}

func (f fakeJobBoard) List(filter jobboardapimodels.JobPostingFilter) ([]jobboardapimodels.JobPostingView, int64, bool, error) {
	return []jobboardapimodels.JobPostingView{{ID: "mock-job-1"}}, 1, true, nil
}

func (f fakeJobBoard) ListByOrganization(organizationID string) ([]jobboardapimodels.JobPostingView, bool, error) {
	return nil, false, nil
}

func (f fakeJobBoard) ChangeStatus(id string, status models.PostingStatus) error {
	return nil
}

type fakeApplications struct {
	err error
}

func (f fakeApplications) Apply(jobID, applicantID string, data applicationapimodels.ApplyData) (string, error) {
	return "", f.err
}

func (f fakeApplications) Reject(id string) error {
	return f.err
}

func (f fakeApplications) ListByJob(jobID string) ([]applicationapimodels.ApplicationView, bool, error) {
	return nil, false, f.err
}

func newTestApp() *fiber.App {
	app := fiber.New()
	InitJobBoardApiRouters(app)
	InitApplicationApiRouters(app)
	return app
}

func doRequest(t *testing.T, app *fiber.App, method, url, body string) (int, apimodels.ScrollerResponse) {
	req := httptest.NewRequest(method, url, strings.NewReader(body))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var out apimodels.ScrollerResponse
	require.NoError(t, json.Unmarshal(raw, &out))
	return resp.StatusCode, out
}

func TestJobBoardApi(t *testing.T) {
	app := newTestApp()

	t.Run(`create success`, func(t *testing.T) {
		jobboardhandler.Instance = fakeJobBoard{}
		status, resp := doRequest(t, app, fiber.MethodPost, "/job_board", `{"title":"Stage Hand"}`)
		require.Equal(t, fiber.StatusOK, status)
		require.Equal(t, "success", resp.Status)
		data := resp.Data.(map[string]interface{})
		require.Equal(t, "jb-1", data["job_board_id"])
	})

	t.Run(`create validation error returns fields`, func(t *testing.T) {
		vErr := apperrors.NewValidationError()
		vErr.Add("title", "title is required")
		vErr.Add("number_of_positions", "number of positions must be greater than 0")
		jobboardhandler.Instance = fakeJobBoard{createErr: vErr}
		status, resp := doRequest(t, app, fiber.MethodPost, "/job_board", `{}`)
		require.Equal(t, fiber.StatusBadRequest, status)
		require.Equal(t, "fail", resp.Status)
		require.Len(t, resp.Data.([]interface{}), 2)
	})

	t.Run(`partial write is internal error`, func(t *testing.T) {
		jobboardhandler.Instance = fakeJobBoard{createErr: &apperrors.PartialWriteError{
			Err:      apperrors.NewPersistenceError("insert organization posting", io.ErrUnexpectedEOF),
			OrphanID: "jb-1",
		}}
		status, resp := doRequest(t, app, fiber.MethodPost, "/job_board", `{}`)
		require.Equal(t, fiber.StatusInternalServerError, status)
		require.Equal(t, "failed to create job posting", resp.Message)
	})

	t.Run(`get not found`, func(t *testing.T) {
		jobboardhandler.Instance = fakeJobBoard{getErr: apperrors.NewNotFoundError("job posting", "x")}
		status, _ := doRequest(t, app, fiber.MethodGet, "/job_board/x", "")
		require.Equal(t, fiber.StatusNotFound, status)
	})

	t.Run(`list reports degraded`, func(t *testing.T) {
		jobboardhandler.Instance = fakeJobBoard{}
		status, resp := doRequest(t, app, fiber.MethodPost, "/job_board/list", `{}`)
		require.Equal(t, fiber.StatusOK, status)
		require.True(t, resp.Degraded)
		require.Equal(t, int64(1), resp.RowCount)
	})

	t.Run(`change status rejects unknown status`, func(t *testing.T) {
		jobboardhandler.Instance = fakeJobBoard{}
		status, _ := doRequest(t, app, fiber.MethodPut, "/job_board/jb-1/change_status", `{"status":"archived"}`)
		require.Equal(t, fiber.StatusBadRequest, status)
	})

	t.Run(`apply without schema is unavailable`, func(t *testing.T) {
		applicationhandler.Instance = fakeApplications{err: &apperrors.RelationNotFoundError{Table: "staff_applications"}}
		status, _ := doRequest(t, app, fiber.MethodPost, "/job_board/jb-1/apply", `{"cover_letter":"hi"}`)
		require.Equal(t, fiber.StatusServiceUnavailable, status)
	})

	t.Run(`reject not found`, func(t *testing.T) {
		applicationhandler.Instance = fakeApplications{err: apperrors.NewNotFoundError("application", "a-1")}
		status, _ := doRequest(t, app, fiber.MethodPut, "/application/a-1/reject", "")
		require.Equal(t, fiber.StatusNotFound, status)
	})
}
