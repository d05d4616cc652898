package elasticsearch

import (
	"context"
	"encoding/json"
	"io"

	"github.com/elastic/go-elasticsearch/v8/esapi"
	"github.com/safedep/fieldcard/core/fieldstats"
	"hermannm.dev/wrap"
)

// Options tunes a structure analysis. Zero values leave the choice to the
// cluster.
type Options struct {
	LinesToSample  int
	Format         string
	TimestampField string
}

// FindStructure analyzes the sample text read from r.
func (a *Analyzer) FindStructure(
	ctx context.Context,
	r io.Reader,
	opts Options,
) (*fieldstats.StructureResult, error) {
	api := a.client.TextStructureFindStructure

	reqOpts := []func(*esapi.TextStructureFindStructureRequest){
		api.WithContext(ctx),
	}
	if opts.LinesToSample > 0 {
		reqOpts = append(reqOpts, api.WithLinesToSample(opts.LinesToSample))
	}
	if opts.Format != "" {
		reqOpts = append(reqOpts, api.WithFormat(opts.Format))
	}
	if opts.TimestampField != "" {
		reqOpts = append(reqOpts, api.WithTimestampField(opts.TimestampField))
	}

	res, err := api(r, reqOpts...)
	if err != nil {
		return nil, wrap.Error(err, "find_structure request failed")
	}
	defer res.Body.Close()

	if res.IsError() {
		return nil, wrapElasticError(responseError(res), "find_structure request failed")
	}

	var result fieldstats.StructureResult
	if err := json.NewDecoder(res.Body).Decode(&result); err != nil {
		return nil, wrap.Error(err, "failed to decode find_structure response")
	}

	return &result, nil
}
