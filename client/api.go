package client

import (
	"bytes"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strconv"

	"ethno-platform-api/models"
)

// LoginResult is the response of POST /auth/login.
type LoginResult struct {
	Token  string `json:"token"`
	ID     int    `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	RoleID int    `json:"role_id"`
}

// Login authenticates and stores the returned token on the session.
func (c *Client) Login(email, password string) (*LoginResult, error) {
	var result LoginResult
	payload := map[string]string{"email": email, "password": password}
	if err := c.postJSON("/auth/login", payload, &result); err != nil {
		return nil, err
	}
	c.session.SetToken(result.Token)
	return &result, nil
}

// Logout clears the stored credential.
func (c *Client) Logout() {
	c.session.Clear()
}

// ResearchSubmission carries the intake form fields.
type ResearchSubmission struct {
	SubmitterName  string
	SubmitterID    string
	SubmitterEmail string
	Program        string
	Batch          string
	Mentor         string
	Title          string
	Abstract       string
	Community      string
	Type           string
	Keywords       string
	DatasetSize    string
}

// SubmitResearch posts a new submission with one attached file.
func (c *Client) SubmitResearch(submission ResearchSubmission, filename string, file io.Reader) (*models.Research, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	fields := map[string]string{
		"submitter_name":  submission.SubmitterName,
		"submitter_id":    submission.SubmitterID,
		"submitter_email": submission.SubmitterEmail,
		"program":         submission.Program,
		"batch":           submission.Batch,
		"mentor":          submission.Mentor,
		"title":           submission.Title,
		"abstract":        submission.Abstract,
		"community":       submission.Community,
		"type":            submission.Type,
		"keywords":        submission.Keywords,
		"dataset_size":    submission.DatasetSize,
	}
	for key, value := range fields {
		if value == "" {
			continue
		}
		if err := writer.WriteField(key, value); err != nil {
			return nil, err
		}
	}

	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		return nil, err
	}
	if _, err := io.Copy(part, file); err != nil {
		return nil, err
	}
	if err := writer.Close(); err != nil {
		return nil, err
	}

	var result struct {
		Research models.Research `json:"research"`
	}
	if err := c.doJSON(http.MethodPost, "/research/submit", writer.FormDataContentType(), buf.Bytes(), &result); err != nil {
		return nil, err
	}
	return &result.Research, nil
}

// ListPublicResearch fetches approved submissions, optionally filtered.
func (c *Client) ListPublicResearch(researchType, community string) ([]models.Research, error) {
	query := url.Values{}
	if researchType != "" {
		query.Set("type", researchType)
	}
	if community != "" {
		query.Set("community", community)
	}

	path := "/research/public"
	if encoded := query.Encode(); encoded != "" {
		path += "?" + encoded
	}

	var result struct {
		Research []models.Research `json:"research"`
	}
	if err := c.getJSON(path, &result); err != nil {
		return nil, err
	}
	return result.Research, nil
}

// ListAdminResearch fetches all submissions (requires a reviewer token).
func (c *Client) ListAdminResearch() ([]models.Research, error) {
	var result struct {
		Research []models.Research `json:"research"`
	}
	if err := c.getJSON("/research/admin", &result); err != nil {
		return nil, err
	}
	return result.Research, nil
}

// UpdateResearchStatus applies a review decision (requires a reviewer token).
func (c *Client) UpdateResearchStatus(researchID int, status, comments string) (*models.Research, error) {
	payload := map[string]string{"status": status}
	if comments != "" {
		payload["comments"] = comments
	}

	var result struct {
		Research models.Research `json:"research"`
	}
	path := "/research/" + strconv.Itoa(researchID) + "/status"
	if err := c.patchJSON(path, payload, &result); err != nil {
		return nil, err
	}
	return &result.Research, nil
}

// ListCommunities fetches the public community profiles.
func (c *Client) ListCommunities() ([]models.Community, error) {
	var result struct {
		Communities []models.Community `json:"communities"`
	}
	if err := c.getJSON("/communities", &result); err != nil {
		return nil, err
	}
	return result.Communities, nil
}
