package grpc

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
)

// RecipeServiceName is the fully qualified gRPC service name
const RecipeServiceName = "schedule1.RecipeService"

const (
	evaluateMethod   = "/" + RecipeServiceName + "/Evaluate"
	topRecipesMethod = "/" + RecipeServiceName + "/TopRecipes"
)

// RecipeServiceServer is the server API for schedule1.RecipeService.
// Requests and responses are google.protobuf.Struct documents whose fields
// mirror the JSON API.
type RecipeServiceServer interface {
	Evaluate(context.Context, *structpb.Struct) (*structpb.Struct, error)
	TopRecipes(context.Context, *structpb.Struct) (*structpb.Struct, error)
}

// RegisterRecipeServiceServer attaches srv to a gRPC server
func RegisterRecipeServiceServer(s grpc.ServiceRegistrar, srv RecipeServiceServer) {
	s.RegisterService(&recipeServiceDesc, srv)
}

func evaluateHandler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(structpb.Struct)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(RecipeServiceServer).Evaluate(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: evaluateMethod}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(RecipeServiceServer).Evaluate(ctx, req.(*structpb.Struct))
	}
	return interceptor(ctx, in, info, handler)
}

func topRecipesHandler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(structpb.Struct)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(RecipeServiceServer).TopRecipes(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: topRecipesMethod}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(RecipeServiceServer).TopRecipes(ctx, req.(*structpb.Struct))
	}
	return interceptor(ctx, in, info, handler)
}

var recipeServiceDesc = grpc.ServiceDesc{
	ServiceName: RecipeServiceName,
	HandlerType: (*RecipeServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "Evaluate", Handler: evaluateHandler},
		{MethodName: "TopRecipes", Handler: topRecipesHandler},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "schedule1/recipe_service.proto",
}
