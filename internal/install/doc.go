// Package install runs the interactive install flow: list the releases of a
// repository, let the user pick a release and one of its assets, download the
// asset into the working directory and hand it to the strategy matching its
// file extension.
//
// Known limitations:
//   - Only the first page of releases reported by the service is offered.
//   - When several releases share a tag, or several assets of a release share a
//     name, the first one in listing order is used.
//   - The package installer and archive extractor exit status is logged but not
//     acted upon: the downloaded file is removed either way.
//   - The working directory is both download and extraction target; two runs
//     in the same directory race on the downloaded file name.
package install
