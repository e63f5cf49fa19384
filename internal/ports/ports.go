package ports

// ApplicationPorts aggregates all ports for dependency injection
type ApplicationPorts struct {
	// Weather
	WeatherProvider WeatherProvider
	WeatherCache    WeatherCache
	WeatherMetrics  WeatherMetrics

	// Settings
	OptionRepository OptionRepository

	// Cache
	CacheProvider CacheProvider
	CacheMetrics  CacheMetrics

	// Security
	TextSanitizer TextSanitizer
	NonceManager  NonceManager

	// Infrastructure
	ConfigProvider ConfigProvider
	Logger         Logger
	Database       interface{}
}
