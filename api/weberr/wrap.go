package weberr

import "errors"

// Opt decorates an error with something the Errors middleware understands.
type Opt func(error) error

func Wrap(err error, opts ...Opt) error {
	for _, opt := range opts {
		err = opt(err)
	}
	return err
}

// WithResponse sets the body and status sent to the client. The outermost
// response wins.
func WithResponse(body interface{}, status int) Opt {
	return func(err error) error {
		return &responseError{error: err, body: body, status: status}
	}
}

// WithFields attaches log fields. They are never shown to the client.
func WithFields(fields map[string]interface{}) Opt {
	return func(err error) error {
		return &fieldsError{error: err, fields: fields}
	}
}

func Response(err error) (body interface{}, status int, ok bool) {
	var re *responseError
	if errors.As(err, &re) {
		return re.body, re.status, true
	}
	return nil, 0, false
}

// Fields collects the log fields of every wrapper in err's chain. On a key
// clash the outer wrapper wins.
func Fields(err error) (map[string]interface{}, bool) {
	var out map[string]interface{}

	for ; err != nil; err = errors.Unwrap(err) {
		fe, ok := err.(*fieldsError)
		if !ok {
			continue
		}

		if out == nil {
			out = make(map[string]interface{}, len(fe.fields))
		}
		for k, v := range fe.fields {
			if _, seen := out[k]; !seen {
				out[k] = v
			}
		}
	}

	return out, out != nil
}

type responseError struct {
	error
	body   interface{}
	status int
}

func (e *responseError) Unwrap() error { return e.error }

type fieldsError struct {
	error
	fields map[string]interface{}
}

func (e *fieldsError) Unwrap() error { return e.error }
