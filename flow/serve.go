package flow

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/cibere/firefoxkb"
)

// Serve reads host requests from the connection and dispatches them to the
// plugin until the host closes the stream or the context is canceled. The
// host delivers one request at a time; requests are handled in order.
func Serve(ctx context.Context, conn *Conn, plugin *Plugin) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		req, err := conn.Read()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}

		if err := serveRequest(ctx, conn, plugin, req); err != nil {
			plugin.Logger.Error("request failed", "method", req.Method, "error", err)
			code := CodeInternalError
			if firefoxkb.ErrorCode(err) == firefoxkb.EINVALID {
				code = CodeInvalidRequest
			}
			if replyErr := conn.ReplyError(req, code, err.Error()); replyErr != nil {
				return replyErr
			}
		}
	}
}

func serveRequest(ctx context.Context, conn *Conn, plugin *Plugin, req *Request) error {
	switch req.Method {
	case "initialize":
		return conn.Reply(req, struct{}{})

	case "query":
		var q Query
		if err := decodeFirstParam(req.Params, &q); err != nil {
			return err
		}
		return conn.Reply(req, QueryResponse{Result: plugin.Query(ctx, q)})

	case "context_menu":
		var data ContextData
		if err := decodeFirstParam(req.Params, &data); err != nil {
			return err
		}
		return conn.Reply(req, QueryResponse{Result: plugin.ContextMenu(ctx, data)})

	default:
		var params []json.RawMessage
		if len(req.Params) > 0 {
			if err := json.Unmarshal(req.Params, &params); err != nil {
				return fmt.Errorf("invalid params for %q: %w", req.Method, err)
			}
		}
		resp, err := plugin.Action(ctx, req.Method, params)
		if err != nil {
			return err
		}
		return conn.Reply(req, resp)
	}
}

// decodeFirstParam unmarshals the first element of a positional parameter
// array into dst.
func decodeFirstParam(raw json.RawMessage, dst any) error {
	var params []json.RawMessage
	if err := json.Unmarshal(raw, &params); err != nil {
		return fmt.Errorf("invalid params: %w", err)
	}
	if len(params) == 0 {
		return fmt.Errorf("missing params")
	}
	if err := json.Unmarshal(params[0], dst); err != nil {
		return fmt.Errorf("invalid params: %w", err)
	}
	return nil
}
