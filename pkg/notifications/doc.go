// Package notifications delivers transient, toast-style messages to the user.
//
// A Notification carries a title, a description and a Variant: VariantNormal
// for confirmations and VariantDestructive for failures. Deliverers present
// notifications through a concrete channel:
//
//   - WriterDeliverer prints one line per notification to an io.Writer
//   - LogDeliverer records notifications as structured slog entries
//   - MemoryDeliverer keeps the most recent ones for rendering or inspection
//   - MultiDeliverer fans out to several deliverers and joins their failures
//   - NoOpDeliverer and DelivererFunc cover the trivial cases
//
// # Usage
//
//	d := notifications.NewMultiDeliverer(log,
//		notifications.NewWriterDeliverer(os.Stdout),
//		notifications.NewLogDeliverer(log),
//	)
//	_ = d.Deliver(ctx, notifications.New("Success!", "Registration successful!", notifications.VariantNormal))
package notifications
