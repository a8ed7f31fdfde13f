package transport

import (
	"encoding/json"
	"fmt"
)

// JSON-RPC error codes returned by the bridge.
const (
	CodeMethodNotFound    = -32601
	CodeInvalidParams     = -32602
	CodeInternal          = -32603
	CodeNotLoggedIn       = -32001
	CodeRecipientNotFound = -32004
)

// Request is a JSON-RPC 2.0 request.
type Request struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      int64           `json:"id"`
	Method  string          `json:"method"`
	Params  json.RawMessage `json:"params,omitempty"`
}

// Response is a JSON-RPC 2.0 response.
type Response struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      int64           `json:"id"`
	Result  json.RawMessage `json:"result,omitempty"`
	Error   *RPCError       `json:"error,omitempty"`
}

// RPCError is the error member of a response.
type RPCError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (e *RPCError) Error() string {
	return fmt.Sprintf("rpc error %d: %s", e.Code, e.Message)
}

// NewRequest builds a request, marshalling params when present.
func NewRequest(id int64, method string, params interface{}) (*Request, error) {
	req := &Request{JSONRPC: "2.0", ID: id, Method: method}
	if params != nil {
		data, err := json.Marshal(params)
		if err != nil {
			return nil, err
		}
		req.Params = data
	}
	return req, nil
}

// NewErrorResponse builds an error response.
func NewErrorResponse(id int64, code int, message string) *Response {
	return &Response{JSONRPC: "2.0", ID: id, Error: &RPCError{Code: code, Message: message}}
}

// NewResultResponse builds a success response.
func NewResultResponse(id int64, result interface{}) (*Response, error) {
	data, err := json.Marshal(result)
	if err != nil {
		return nil, err
	}
	return &Response{JSONRPC: "2.0", ID: id, Result: data}, nil
}

// Wire shapes of the bridge methods.

type wireUser struct {
	UserName   string `json:"user_name,omitempty"`
	RemarkName string `json:"remark_name,omitempty"`
	NickName   string `json:"nick_name,omitempty"`
}

// displayName prefers the remark the account gave the contact over the
// contact's own nickname.
func (u wireUser) displayName() string {
	if u.RemarkName != "" {
		return u.RemarkName
	}
	return u.NickName
}

type connectResult struct {
	Self wireUser `json:"self"`
}

type contactsResult struct {
	Contacts []wireUser `json:"contacts"`
}

type sendParams struct {
	To          string `json:"to"`
	Text        string `json:"text"`
	ClientMsgID string `json:"client_msg_id"`
}

type pollParams struct {
	Cursor int64 `json:"cursor"`
}

type wireMessage struct {
	Peer     wireUser `json:"peer"`
	Text     string   `json:"text"`
	Incoming bool     `json:"incoming"`
	SentAt   int64    `json:"sent_at,omitempty"`
}

type pollResult struct {
	Messages   []wireMessage `json:"messages"`
	NextCursor int64         `json:"next_cursor"`
}
