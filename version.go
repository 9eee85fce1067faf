package gsearch

// Version is the release of the module, overridable at link time.
var Version = "0.4.0"
