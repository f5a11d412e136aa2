package services

// ServiceContainer holds instances of all the application services.
// This is the main entry point for accessing service functionality and
// is used throughout the application, particularly in the handlers.
type ServiceContainer struct {
	Operator    OperatorSvcFacade
	Token       TokenSvcFacade
	GoogleOAuth GoogleOAuthSvcFacade
	Location    LocationSvcFacade
	Bar         BarSvcFacade
	Machine     MachineSvcFacade
	Collection  CollectionSvcFacade
	Export      ExportSvcFacade
}
