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

// Package remote performs the single HTTP callout against the org console.
//
// The console authenticates page requests with the session id cookie rather
// than an Authorization header, so HTTPFetcher installs a RoundTripper that
// attaches "Cookie: sid=<session id>" to every request it sends.
//
// Basic usage:
//
//	fetcher := remote.NewHTTPFetcher(nil)
//	resp, err := fetcher.Fetch(ctx, "https://acme.my.salesforce.com/changemgmt/listOutboundChangeSet.apexp", sid)
//	if err != nil {
//	    // err is an *errors.NetworkError
//	}
//	// resp.Body holds the raw HTML
//
// The request is a POST and is issued exactly once. It is not retried.
package remote
