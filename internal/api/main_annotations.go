// @title           restful-notes API
// @version         1.0
// @description     Notes and tags linked with HAL hypermedia. Tag references in note bodies are tag resource URIs.
// @BasePath        /
// @accept          json
// @produce         json
package api
