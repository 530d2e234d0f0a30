package version

var GitCommit string
var GitTag string
