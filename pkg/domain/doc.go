/*
Package domain contains the core models shared by the demoreel packages.

It defines the demo topics the tool knows how to synthesize, the lifecycle
events emitted while frames are generated, and the sentinel errors returned
across package boundaries. This package is kept free of plotting and I/O
dependencies.

# Key Entities

  - Topic: A portfolio demo (ID, dashboard headline, target video filename).
  - LifecycleHooks: Callbacks fired around topics, frames and the guide write.
  - VideoTargets: The filenames the portfolio video player expects.
*/
package domain
