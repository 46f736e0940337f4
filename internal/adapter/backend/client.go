package backend

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	openapierrors "github.com/go-openapi/errors"
	"github.com/go-openapi/runtime"
	httptransport "github.com/go-openapi/runtime/client"
	"github.com/go-openapi/strfmt"
	"github.com/go-openapi/validate"
	"github.com/sm8ta/webike_bicycle_manager/internal/core/domain"
	"github.com/sm8ta/webike_bicycle_manager/internal/core/ports"
)

var (
	// ErrTransport means the request never completed.
	ErrTransport = errors.New("bicycles backend unreachable")
	// ErrDecode means the response body was not the expected JSON.
	ErrDecode = errors.New("malformed bicycles backend response")
)

const (
	opListBicycles  = "listBicycles"
	opGetBicycle    = "getBicycle"
	opCreateBicycle = "createBicycle"
	opUpdateBicycle = "updateBicycle"
	opDeleteBicycle = "deleteBicycle"
)

// Client speaks the bicycles REST contract. Non-2xx answers come back as
// *runtime.APIError carrying the status code.
type Client struct {
	transport runtime.ClientTransport
	timeout   time.Duration
	metrics   ports.MetricsPort
}

// New builds a client for a base URL such as http://localhost:3001.
func New(baseURL string, timeout time.Duration, metrics ports.MetricsPort) (*Client, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid backend url: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("invalid backend url %q: scheme and host are required", baseURL)
	}

	basePath := u.Path
	if basePath == "" {
		basePath = "/"
	}

	transport := httptransport.New(u.Host, basePath, []string{u.Scheme})
	return NewWithTransport(transport, timeout, metrics), nil
}

func NewWithTransport(transport runtime.ClientTransport, timeout time.Duration, metrics ports.MetricsPort) *Client {
	return &Client{
		transport: transport,
		timeout:   timeout,
		metrics:   metrics,
	}
}

func (c *Client) List(ctx context.Context) ([]*domain.Bicycle, error) {
	result, err := c.submit(ctx, opListBicycles, http.MethodGet, "/bicycles",
		c.params(nil, nil),
		runtime.ClientResponseReaderFunc(func(response runtime.ClientResponse, consumer runtime.Consumer) (interface{}, error) {
			if !isSuccess(response.Code()) {
				return nil, runtime.NewAPIError(opListBicycles, response.Message(), response.Code())
			}
			var bicycles []*domain.Bicycle
			if err := consumer.Consume(response.Body(), &bicycles); err != nil {
				return nil, fmt.Errorf("%w: %v", ErrDecode, err)
			}
			if err := validateBicycles(bicycles); err != nil {
				return nil, fmt.Errorf("%w: %v", ErrDecode, err)
			}
			return bicycles, nil
		}),
	)
	if err != nil {
		return nil, err
	}
	return result.([]*domain.Bicycle), nil
}

func (c *Client) Get(ctx context.Context, id domain.BicycleID) (*domain.Bicycle, error) {
	result, err := c.submit(ctx, opGetBicycle, http.MethodGet, "/bicycles/{id}",
		c.params(&id, nil),
		runtime.ClientResponseReaderFunc(func(response runtime.ClientResponse, consumer runtime.Consumer) (interface{}, error) {
			if !isSuccess(response.Code()) {
				return nil, runtime.NewAPIError(opGetBicycle, response.Message(), response.Code())
			}
			bicycle := &domain.Bicycle{}
			if err := consumer.Consume(response.Body(), bicycle); err != nil {
				return nil, fmt.Errorf("%w: %v", ErrDecode, err)
			}
			return bicycle, nil
		}),
	)
	if err != nil {
		return nil, err
	}
	return result.(*domain.Bicycle), nil
}

func (c *Client) Create(ctx context.Context, bicycle *domain.Bicycle) error {
	_, err := c.submit(ctx, opCreateBicycle, http.MethodPost, "/bicycles",
		c.params(nil, bicycle),
		statusOnly(opCreateBicycle),
	)
	return err
}

func (c *Client) Update(ctx context.Context, id domain.BicycleID, bicycle *domain.Bicycle) error {
	_, err := c.submit(ctx, opUpdateBicycle, http.MethodPut, "/bicycles/{id}",
		c.params(&id, bicycle),
		statusOnly(opUpdateBicycle),
	)
	return err
}

func (c *Client) Delete(ctx context.Context, id domain.BicycleID) error {
	_, err := c.submit(ctx, opDeleteBicycle, http.MethodDelete, "/bicycles/{id}",
		c.params(&id, nil),
		statusOnly(opDeleteBicycle),
	)
	return err
}

func (c *Client) params(id *domain.BicycleID, body *domain.Bicycle) runtime.ClientRequestWriter {
	return runtime.ClientRequestWriterFunc(func(r runtime.ClientRequest, _ strfmt.Registry) error {
		if c.timeout > 0 {
			if err := r.SetTimeout(c.timeout); err != nil {
				return err
			}
		}
		if id != nil {
			if err := r.SetPathParam("id", id.String()); err != nil {
				return err
			}
		}
		if body != nil {
			if err := r.SetBodyParam(body); err != nil {
				return err
			}
		}
		return nil
	})
}

func (c *Client) submit(
	ctx context.Context,
	operationID, method, path string,
	params runtime.ClientRequestWriter,
	reader runtime.ClientResponseReader,
) (interface{}, error) {
	start := time.Now()

	result, err := c.transport.Submit(&runtime.ClientOperation{
		ID:                 operationID,
		Method:             method,
		PathPattern:        path,
		ProducesMediaTypes: []string{runtime.JSONMime},
		ConsumesMediaTypes: []string{runtime.JSONMime},
		Params:             params,
		Reader:             reader,
		Context:            ctx,
	})

	err = classify(err)
	c.record(operationID, err, start)
	return result, err
}

func (c *Client) record(operationID string, err error, start time.Time) {
	if c.metrics == nil {
		return
	}
	c.metrics.RecordBackendCall(operationID, Outcome(err), start)
}

// Outcome names the failure class of err for metrics and logs.
func Outcome(err error) string {
	var apiErr *runtime.APIError
	switch {
	case err == nil:
		return "ok"
	case errors.As(err, &apiErr):
		return "status_error"
	case errors.Is(err, ErrDecode):
		return "decode_error"
	default:
		return "transport_error"
	}
}

func classify(err error) error {
	if err == nil {
		return nil
	}
	var apiErr *runtime.APIError
	if errors.As(err, &apiErr) || errors.Is(err, ErrDecode) {
		return err
	}
	return fmt.Errorf("%w: %v", ErrTransport, err)
}

func statusOnly(operationID string) runtime.ClientResponseReader {
	return runtime.ClientResponseReaderFunc(func(response runtime.ClientResponse, _ runtime.Consumer) (interface{}, error) {
		if !isSuccess(response.Code()) {
			return nil, runtime.NewAPIError(operationID, response.Message(), response.Code())
		}
		return nil, nil
	})
}

func isSuccess(code int) bool {
	return code >= 200 && code < 300
}

// validateBicycles rejects list entries that cannot be addressed later.
func validateBicycles(bicycles []*domain.Bicycle) error {
	var res []error
	for i, b := range bicycles {
		if b == nil {
			res = append(res, openapierrors.Required(fmt.Sprintf("[%d]", i), "body", nil))
			continue
		}
		if err := validate.RequiredString(fmt.Sprintf("[%d].id", i), "body", b.ID.String()); err != nil {
			res = append(res, err)
		}
	}
	if len(res) > 0 {
		return openapierrors.CompositeValidationError(res...)
	}
	return nil
}
