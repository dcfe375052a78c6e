package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-resty/resty/v2"
)

type (
	DataExtractor[T any] func(dataProvider) (T, error)

	dataProvider interface {
		Body() io.Reader
	}

	responseDataProvider struct {
		*resty.Response
	}
)

var ErrParsingError = errors.New("parsing error")

func ParseResponse[T any](r *resty.Response, extractor DataExtractor[T], lastErr error) (T, error) {
	if lastErr != nil {
		var result T
		return result, lastErr
	}

	return extractor(responseDataProvider{r})
}

func ParseResponseOptional[T any](r *resty.Response, extractor DataExtractor[T], lastErr error) *T {
	if lastErr != nil {
		return nil
	}

	result, err := extractor(responseDataProvider{r})
	if err != nil {
		return nil
	}

	return &result
}

func JSONBody[T any]() DataExtractor[T] {
	return func(p dataProvider) (T, error) {
		var result T
		err := json.NewDecoder(p.Body()).Decode(&result)
		if err != nil {
			return result, fmt.Errorf("%w: decode json body: %w", ErrParsingError, err)
		}

		return result, nil
	}
}

// StatusText returns the reason phrase sent by the server, or the standard one when it is missing.
func StatusText(r *resty.Response) string {
	code := r.StatusCode()
	text := strings.TrimSpace(strings.TrimPrefix(r.Status(), strconv.Itoa(code)))
	if text != "" {
		return text
	}

	return http.StatusText(code)
}

func (p responseDataProvider) Body() io.Reader {
	if p.Response == nil {
		return http.NoBody
	}

	return bytes.NewReader(p.Response.Body())
}
