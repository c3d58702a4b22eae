////////////////////////////////////////////////////////////////////////////////
// Dapp Punks: a gated, supply-capped NFT minting contract for the vsc network
////////////////////////////////////////////////////////////////////////////////

package main

// main is left empty on purpose - the wasm host invokes the exported entry
// points directly.
func main() {

}
