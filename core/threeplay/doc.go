// Package threeplay is the client for the transcription vendor's file registry.
//
// The vendor groups transcribed files into named batches. The client lists all
// batches in one call and the files page by page (1-based, an empty page ends
// the listing). Every request carries the account API key, is throttled by a
// token bucket and fails with an error marked reconcile.ErrTransport.
//
// # Usage
//
//	client, err := threeplay.NewClient(cfg.ThreePlay)
//	batches, err := client.ListBatches(ctx)
//	files, err := client.ListFilesPage(ctx, 1)
package threeplay
