// Package console runs the registration wizard in a terminal.
//
// A Runner walks a registration.Wizard step by step through a Driver. The
// default Driver is backed by github.com/AlecAivazis/survey/v2; tests and
// other front-ends can plug in their own.
//
//	w := registration.New(registration.WithDeliverer(notifications.NewWriterDeliverer(os.Stdout)))
//	r := console.NewRunner(w, console.WithSummaryFormat(console.FormatYAML))
//	if err := r.Run(ctx); errors.Is(err, console.ErrAborted) {
//		os.Exit(130)
//	}
package console
