package elasticsearch

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/elastic/go-elasticsearch/v8/esapi"
	"github.com/elastic/go-elasticsearch/v8/typedapi/types"
	"hermannm.dev/wrap"
)

func wrapElasticError(wrapped error, message string) error {
	return wrap.Error(formatElasticError(wrapped), message)
}

// responseError decodes the error body of a failed response. Bodies that are
// not Elasticsearch errors fall back to the HTTP status.
func responseError(res *esapi.Response) error {
	body, err := io.ReadAll(res.Body)
	if err != nil {
		return wrap.Errorf(err, "failed to read error response (status %d)", res.StatusCode)
	}

	var elasticErr types.ElasticsearchError
	if err := json.Unmarshal(body, &elasticErr); err != nil || elasticErr.ErrorCause.Type == "" {
		return &types.ElasticsearchError{
			ErrorCause: types.ErrorCause{Type: http.StatusText(res.StatusCode)},
			Status:     res.StatusCode,
		}
	}
	if elasticErr.Status == 0 {
		elasticErr.Status = res.StatusCode
	}

	return &elasticErr
}

func formatElasticError(err error) error {
	elasticErr, ok := err.(*types.ElasticsearchError)
	if !ok {
		return err
	}

	var errMessage string
	if elasticErr.ErrorCause.Reason == nil {
		errMessage = fmt.Sprintf("%s (status %d)", elasticErr.ErrorCause.Type, elasticErr.Status)
	} else {
		errMessage = fmt.Sprintf(
			"%s (%s, status %d)",
			*elasticErr.ErrorCause.Reason, elasticErr.ErrorCause.Type, elasticErr.Status,
		)
	}

	rootCause := make([]error, 0, len(elasticErr.ErrorCause.RootCause))
	for _, cause := range elasticErr.ErrorCause.RootCause {
		if cause.Reason == nil {
			rootCause = append(rootCause, errors.New(cause.Type))
		} else {
			rootCause = append(rootCause, fmt.Errorf("%s (%s)", *cause.Reason, cause.Type))
		}
	}

	if len(rootCause) == 0 {
		return errors.New(errMessage)
	}
	return wrap.Errors(errMessage, rootCause...)
}
