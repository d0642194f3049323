package mcp

// getArgs extracts the argument map from the loosely typed request payload.
func getArgs(arguments interface{}) (map[string]interface{}, bool) {
	args, ok := arguments.(map[string]interface{})
	return args, ok
}

// Helper for converting string arguments safely
func getStringArg(args map[string]interface{}, key string) (string, bool) {
	val, ok := args[key].(string)
	return val, ok
}
