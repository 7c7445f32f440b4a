// Package errors provides the structured error type used across the importer.
//
// Errors carry a Code, a user-facing message, an optional cause and metadata.
// The import pipeline sorts every failure into one of four buckets:
//
//   - a missing stat block field is never an error; extractors return nil
//   - a spell missing from the compendium is a NotFound error that the
//     orchestrator turns into a warning
//   - a rejected item write is reported per item name and does not abort
//   - malformed input (no name, no ability table) is an InvalidArgument
//     error carrying the failing fields under the "validation_errors" key
//
// # Basic Usage
//
//	err := errors.NotFoundf("spell %q not found", name)
//	err := errors.InvalidArgument("stat block text is required")
//
// Wrapping keeps the code of the wrapped error:
//
//	if _, err := repo.CreateActor(ctx, input); err != nil {
//	    return nil, errors.Wrap(err, "failed to create actor")
//	}
//
// # Validation Errors
//
//	vb := errors.NewValidationBuilder()
//	errors.ValidateRequired("name", model.Name, vb)
//	if err := vb.Build(); err != nil {
//	    return nil, err
//	}
//
// The CLI maps codes to exit statuses through Code.ExitCode.
package errors
