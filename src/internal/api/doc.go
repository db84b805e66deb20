// Package api provides the REST API server for ioc-diff.
//
// The API exposes the same comparison the CLI runs, for callers that already
// hold both indicator lists in memory:
//   - POST /api/v1/compare: set difference of two lists
//   - POST /api/v1/classify: how a single list is split into address space and other indicators
//   - GET /api/v1/health: liveness and build information
//
// Access is limited to the client networks listed in the server configuration.
//
// # Response Format
//
// All successful responses wrap data in a "data" field:
//
//	{
//	  "data": { /* response payload */ }
//	}
//
// Error responses use the following format:
//
//	{
//	  "error": {
//	    "code": "ERROR_CODE",
//	    "message": "Human-readable error message",
//	    "details": { /* optional context */ }
//	  }
//	}
package api
