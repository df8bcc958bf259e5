package demoreel

// Version is the release of the demoreel module and command.
const Version = "0.3.0"
