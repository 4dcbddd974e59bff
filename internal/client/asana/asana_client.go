package asana

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/TWRT/section-reporter/internal/models"
)

// paginationOptFields is the field superset requested on every continuation
// page. The first page honours the caller's selection, but follow-up pages
// always widen to this set so the Team filter and every aggregation see the
// fields they need regardless of which caller started the walk.
const paginationOptFields = "custom_fields,created_at,completed,assignee.name"

type AsanaClient struct {
	baseUrl    string
	token      string
	teamName   string
	httpClient *http.Client
}

func NewAsanaClient(baseUrl, token, teamName string) *AsanaClient {
	return &AsanaClient{
		baseUrl:    baseUrl,
		token:      token,
		teamName:   teamName,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// GetSectionTasks walks every page of the section's task listing and returns
// the tasks matching the configured team, concatenated in page order. A
// non-200 status on any page aborts the whole fetch; there is no partial
// result and no retry.
func (c *AsanaClient) GetSectionTasks(ctx context.Context, sectionId, optFields string) ([]models.Task, error) {
	var allTasks []models.Task

	reqUrl := c.tasksUrl(sectionId, optFields, "")
	for reqUrl != "" {
		page, err := c.fetchPage(ctx, reqUrl)
		if err != nil {
			return nil, err
		}

		for _, asanaTask := range page.Data {
			task := toModel(asanaTask)
			if task.MatchesTeam(c.teamName) {
				allTasks = append(allTasks, task)
			}
		}

		if page.NextPage != nil {
			reqUrl = c.tasksUrl(sectionId, paginationOptFields, page.NextPage.Offset)
		} else {
			reqUrl = ""
		}
	}

	return allTasks, nil
}

func (c *AsanaClient) tasksUrl(sectionId, optFields, offset string) string {
	params := url.Values{}
	params.Set("opt_fields", optFields)
	if offset != "" {
		params.Set("offset", offset)
	}
	return c.baseUrl + "/sections/" + sectionId + "/tasks?" + params.Encode()
}

func (c *AsanaClient) fetchPage(ctx context.Context, reqUrl string) (*TasksResponse, error) {
	req, err := http.NewRequestWithContext(ctx, "GET", reqUrl, nil)
	if err != nil {
		return nil, fmt.Errorf("build request (asana): %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("get section tasks (asana): %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		errorBody, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, fmt.Errorf("read error body (asana): %w", err)
		}

		var asanaErr AsanaErrors
		if err := json.Unmarshal(errorBody, &asanaErr); err != nil {
			return nil, fmt.Errorf("error status (asana): %d", resp.StatusCode)
		}
		if len(asanaErr.Errors) > 0 {
			return nil, fmt.Errorf("Asana error: %s", asanaErr.Errors[0].Message)
		}
		return nil, fmt.Errorf("API error status: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response body (asana): %w", err)
	}

	var tasksResp TasksResponse
	if err := json.Unmarshal(body, &tasksResp); err != nil {
		return nil, fmt.Errorf("parse section tasks (asana): %w", err)
	}

	return &tasksResp, nil
}

func toModel(asanaTask AsanaTask) models.Task {
	var assigneeName string
	if asanaTask.Assignee != nil {
		assigneeName = asanaTask.Assignee.Name
	}

	customFields := make([]models.CustomFieldValue, len(asanaTask.CustomFields))
	for i, cf := range asanaTask.CustomFields {
		customFields[i] = models.CustomFieldValue{
			Name:         cf.Name,
			DisplayValue: cf.DisplayValue,
		}
	}

	return models.Task{
		Id:           asanaTask.Gid,
		Completed:    asanaTask.Completed,
		CreatedAt:    asanaTask.CreatedAt,
		AssigneeName: assigneeName,
		CustomFields: customFields,
	}
}
