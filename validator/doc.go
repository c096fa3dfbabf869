// Package validator checks an OpenAPI document before documentation is
// generated from it.
//
// Two independent checks run:
//
//   - Structural validation through kin-openapi: required fields, schema
//     well-formedness and reference integrity as the OpenAPI 3.0 rules define
//     them.
//   - A reference report over the parsed document: every $ref the generator
//     would silently drop because its target is missing, and every schema
//     reference that is recursive (reported for information only). The
//     same walk flags response keys that are not status codes, media types
//     that do not parse, and unregistered status codes (info).
//
// Generation itself never fails on a broken reference; this package is how
// such problems are surfaced.
//
//	result, err := validator.New().Validate(ctx, "schemas/partner-api.yaml")
//	if err != nil {
//	    return err
//	}
//	for _, issue := range result.Issues {
//	    fmt.Println(issue)
//	}
//	if !result.Valid {
//	    os.Exit(1)
//	}
package validator
