// Package messages defines how errors, warnings and results travel through
// brookplot's layers.
//
// # Library packages (palette, theme, annotate, logo, figure, preview, export)
//
// Return standard Go errors and never print. Lookups against fixed tables
// return *lookup.UnknownKeyError, which lists every valid option and
// matches lookup.ErrUnknownKey through errors.Is. Missing files return
// typed errors that match os.ErrNotExist. Validation failures wrap a
// package sentinel such as colors.ErrInvalidHex or theme.ErrInvalidFontSize.
//
// Pattern:
//
//	p, err := palette.LookupCore(name, reverse)
//	if err != nil {
//	    return err
//	}
//
// Wrap with context when crossing a package boundary:
//
//	if err := png.Encode(w, img); err != nil {
//	    return fmt.Errorf("failed to encode png: %w", err)
//	}
//
// Advisories are not errors. A figure records them as Warning values and
// logs them at warn level.
//
// # Terminal views (internal/browser)
//
// Return a tea.Cmd that produces a types.StatusMsg. The helpers in this
// package build them:
//
//	if err := copyToClipboard(codes); err != nil {
//	    return messages.ErrorCmd("Copy failed: %v", err)
//	}
//	return messages.SuccessCmd("Copied %s", name)
//
// The status line clears itself after a few seconds. Only the latest
// message is cleared; ClearStatusMsg carries the ID of the message it was
// scheduled for.
//
// # Command line (cmd/brookplot)
//
// Commands use cobra's RunE and return errors unchanged. main prints the
// error and exits with status 1.
//
// # Message guidelines
//
// Name what failed and on what: "failed to create out.png" rather than
// "operation failed". Unknown keys always echo the rejected input.
package messages
