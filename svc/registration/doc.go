// Package registration implements a multi-step registration wizard.
//
// The wizard collects personal, address and account data across four fixed
// steps (see Steps). Every edit re-validates the edited field; Next validates
// the whole field set of the current step and only advances when it is valid.
// The last step is a read-only summary from which the record is submitted.
//
//	w := registration.New(
//		registration.WithSubmitter(registration.NewHTTPSubmitter(url)),
//		registration.WithDeliverer(notifications.NewWriterDeliverer(os.Stdout)),
//	)
//	_ = w.EditField(registration.FieldFullName, "Ann")
//	...
//	fut, err := w.Submit(ctx)
//	if err != nil {
//		// ErrNotOnFinalStep, ErrSubmissionInProgress or validator.ValidationErrors
//	}
//	receipt, err := fut.Await()
//
// A successful submission resets the wizard to its defaults and emits a
// "Success!" notification. A failed one keeps every value and error, emits a
// destructive notification, and resolves the future with a *SubmissionError.
// Only one submission may be in flight at a time.
package registration
