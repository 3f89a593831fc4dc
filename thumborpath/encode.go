package thumborpath

// FiltersPrefix prefix of the filters operation part
const FiltersPrefix = "filters:"

// Encode renders structural parts and filter tokens into the operation path segment
func Encode(parts, filters []string) string {
	return Join("/",
		Join("/", parts...),
		Prepend(FiltersPrefix, Join(":", Uniq(filters)...)),
	)
}

// Generate thumbor URL from server URL, operation segment and image path with signer.
// nil signer generates unsafe URL
func Generate(serverURL, operation, image string, signer Signer) string {
	sig := Sign(signer, operation, image)
	if operation == "" {
		return serverURL + "/" + sig + "/" + image
	}
	return serverURL + "/" + sig + "/" + operation + "/" + image
}
