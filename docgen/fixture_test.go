package docgen

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/partnerdocs/oasdocs/parser"
)

const siteSpec = `openapi: 3.0.3
info:
  title: Partner API
  version: "1"
paths:
  /prospects/:
    post:
      summary: Create a prospect
      tags: [Prospects, Tasks]
      requestBody:
        $ref: '#/components/requestBodies/ProspectBody'
      responses:
        "201":
          $ref: '#/components/responses/ProspectCreated'
    get:
      summary: List prospects
      tags: [Prospects]
      parameters:
        - $ref: '#/components/parameters/PageParam'
        - name: status
          in: query
          required: true
          description: Filter by status
          schema:
            type: string
            nullable: true
        - name: X-Trace
          in: header
          schema:
            type: string
      responses:
        "200":
          description: OK
          content:
            application/json:
              schema:
                type: array
                items:
                  $ref: '#/components/schemas/ProspectSchema'
  /prospects/{prospectId}:
    delete:
      tags: [Prospects]
      responses:
        "204":
          description: Deleted
  /renters/{renterId}/appointment/:
    post:
      summary: Book an appointment
      tags: [Appointment Booking]
  /prospects/{prospectId}/appointments/:
    post:
      summary: Book an appointment
      tags: [Appointment Booking]
  /beta/widgets:
    get:
      summary: Get widgets
      tags: [Brand New]
      responses:
        "200":
          description: OK
          content:
            application/json:
              schema:
                type: boolean
                example: false
  /health:
    get:
      summary: Health
components:
  parameters:
    PageParam:
      name: page
      in: query
      description: Page number
      schema:
        type: integer
  requestBodies:
    ProspectBody:
      content:
        application/json:
          schema:
            $ref: '#/components/schemas/ProspectSchema'
  responses:
    ProspectCreated:
      description: Created
      content:
        application/json:
          schema:
            $ref: '#/components/schemas/ProspectSchema'
  schemas:
    ProspectSchema:
      type: object
      required: [first_name]
      properties:
        first_name:
          type: string
          example: Ada
        move_in_date:
          type: string
          format: date
`

func parseFixture(t *testing.T, src string) *parser.ParseResult {
	t.Helper()
	result, err := parser.New().ParseBytes([]byte(src))
	require.NoError(t, err)
	return result
}

// findEndpoint returns the endpoint for tag, method and path from the fixture.
func findEndpoint(t *testing.T, doc *parser.Document, tag, method, path string) Endpoint {
	t.Helper()
	for _, ep := range Endpoints(doc) {
		if ep.Tag == tag && ep.Method == method && ep.Path == path {
			return ep
		}
	}
	require.Failf(t, "endpoint not found", "%s %s %s", tag, method, path)
	return Endpoint{}
}
