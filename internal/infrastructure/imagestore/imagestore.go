package imagestore

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/Badmus2018/gogdripsv1/pkg/httpclient"
)

// Client talks to the external image store. Uploads return the stable URL
// the store assigned; deletions are by that URL.
type Client interface {
	Upload(ctx context.Context, filename string, contents io.Reader) (url string, err error)
	Delete(ctx context.Context, url string) error
}

type ClientImpl struct {
	baseURL string
}

func CreateNewClient(baseURL string) Client {
	return &ClientImpl{baseURL: baseURL}
}

func (c *ClientImpl) Upload(ctx context.Context, filename string, contents io.Reader) (string, error) {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		return "", fmt.Errorf("failed to build multipart body: %w", err)
	}

	if _, err := io.Copy(part, contents); err != nil {
		return "", fmt.Errorf("failed to read file contents: %w", err)
	}

	if err := writer.Close(); err != nil {
		return "", err
	}

	statusCode, respBody, err := httpclient.SendRequest(ctx, httpclient.HttpRequest{
		URL:    fmt.Sprintf("%s/upload", c.baseURL),
		Method: http.MethodPost,
		Body:   body.Bytes(),
		Headers: map[string]string{
			"Content-Type": writer.FormDataContentType(),
		},
	})
	if err != nil {
		return "", err
	}

	if statusCode != http.StatusOK && statusCode != http.StatusCreated {
		return "", fmt.Errorf("image store rejected upload with status %d", statusCode)
	}

	var uploadResp struct {
		URL string `json:"url"`
	}
	if err := json.Unmarshal(respBody, &uploadResp); err != nil {
		return "", fmt.Errorf("failed to decode upload response: %w", err)
	}

	return uploadResp.URL, nil
}

func (c *ClientImpl) Delete(ctx context.Context, url string) error {
	payload, err := json.Marshal(map[string]string{"url": url})
	if err != nil {
		return err
	}

	statusCode, _, err := httpclient.SendRequest(ctx, httpclient.HttpRequest{
		URL:    fmt.Sprintf("%s/upload", c.baseURL),
		Method: http.MethodDelete,
		Body:   payload,
		Headers: map[string]string{
			"Content-Type": "application/json",
		},
	})
	if err != nil {
		return err
	}

	if statusCode != http.StatusOK && statusCode != http.StatusNoContent {
		return fmt.Errorf("image store rejected deletion with status %d", statusCode)
	}

	return nil
}
