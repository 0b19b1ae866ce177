package version

// AppVersion is the current deepthought release version.
const AppVersion = "0.1.0"
