package constant

// AsciiArtLogo is the banner printed above the root command help.
const AsciiArtLogo = `
 _     _ _
| |__ (_|_)
| '_ \| | |
| |_) | | |
|_.__/|_|_|`
