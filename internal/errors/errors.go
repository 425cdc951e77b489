// Copyright 2025 SirSeer, LLC
//
// Licensed under the Business Source License 1.1 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     https://mariadb.com/bsl11
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package errors defines sentinel errors and typed error values for consistent
// error handling across the application. Each category maps to a specific exit
// code in the CLI for proper scripting support.
package errors

import "errors"

// Sentinel errors for consistent error handling and exit code mapping
var (
	// ErrAuthentication indicates the external auth tool could not produce a session.
	// Maps to exit code 2.
	ErrAuthentication = errors.New("authentication failed")

	// ErrNetworkFailure indicates the HTTP callout failed at the transport layer.
	// Maps to exit code 3.
	ErrNetworkFailure = errors.New("network connection failed")

	// ErrDOMParse indicates the console page did not have the expected structure.
	// Maps to exit code 1.
	ErrDOMParse = errors.New("failed to parse change set page")
)

// AuthenticationError carries the message and error name reported by the
// external auth tool.
type AuthenticationError struct {
	Message string
	Code    string
}

func (e *AuthenticationError) Error() string {
	if e.Message == "" {
		return ErrAuthentication.Error()
	}
	return e.Message
}

// Is reports whether target is ErrAuthentication.
func (e *AuthenticationError) Is(target error) bool {
	return target == ErrAuthentication
}

// NetworkError wraps a transport failure. The message is the cause's message,
// unchanged.
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return e.Err.Error()
}

// Unwrap exposes both the category sentinel and the original cause.
func (e *NetworkError) Unwrap() []error {
	return []error{ErrNetworkFailure, e.Err}
}

// DOMParseError reports why the change set page could not be scraped.
type DOMParseError struct {
	Reason string
}

func (e *DOMParseError) Error() string {
	if e.Reason == "" {
		return ErrDOMParse.Error()
	}
	return ErrDOMParse.Error() + ": " + e.Reason
}

// Is reports whether target is ErrDOMParse.
func (e *DOMParseError) Is(target error) bool {
	return target == ErrDOMParse
}

// Code returns a short machine-readable name for err, used in JSON error
// envelopes.
func Code(err error) string {
	var authErr *AuthenticationError
	if errors.As(err, &authErr) && authErr.Code != "" {
		return authErr.Code
	}

	switch {
	case errors.Is(err, ErrAuthentication):
		return "AuthenticationError"
	case errors.Is(err, ErrNetworkFailure):
		return "NetworkError"
	case errors.Is(err, ErrDOMParse):
		return "DOMPARSERERROR"
	default:
		return "Error"
	}
}
